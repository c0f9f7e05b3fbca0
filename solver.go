package lcsdiff

// Threshold LCS solver.
//
// thresh[k] holds the smallest B position that ends a known increasing chain
// of matches of length k, and link[k] holds that chain. Rows of A are
// processed in order; each match (i, j) finds the slot k with
// thresh[k-1] < j <= thresh[k] and, when j < thresh[k], replaces slot k with
// a chain that extends the chain of slot k-1.
//
// References:
// - J.W. Hunt and T.G. Szymanski, "A Fast Algorithm for Computing Longest
//   Common Subsequences", CACM 20(5), 1977
// - S. Kuo and G.R. Cross, "An Improved Algorithm to Find the Length of the
//   Longest Common Subsequence of Two Strings", ACM SIGIR Forum 23(3-4), 1989
// - J.W. Hunt and M.D. McIlroy, "An Algorithm for Differential File
//   Comparison", Bell Labs CSTR #41, 1976
// - raygard/hdiff (0BSD License)

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Strategy selects how the solver searches the threshold array.
// Every strategy produces the same threshold array and the same LCS; they
// differ only in speed.
type Strategy int

const (
	// KuoCrossBinary visits each row's matches in increasing order and
	// binary searches the part of the threshold array above the previous
	// slot.
	KuoCrossBinary Strategy = iota
	// KuoCross visits each row's matches in increasing order and scans the
	// threshold array upward from the previous slot.
	KuoCross
	// HuntSzymanski visits each row's matches in decreasing order and
	// binary searches the whole threshold array for each of them.
	HuntSzymanski
	// HuntMcIlroy merges each row into a candidate list bounded by a
	// moving fence, as in the original diff(1).
	HuntMcIlroy
)

var strategyNames = map[Strategy]string{
	KuoCrossBinary: "kcmod",
	KuoCross:       "kc",
	HuntSzymanski:  "hs",
	HuntMcIlroy:    "hm",
}

// Strategies returns all known strategies.
func Strategies() []Strategy {
	return []Strategy{KuoCrossBinary, KuoCross, HuntSzymanski, HuntMcIlroy}
}

// String returns the short name of the strategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseStrategy returns the strategy with the given short name.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

func (s Strategy) matchOrder() matchOrder {
	if s == HuntSzymanski {
		return descending
	}
	return ascending
}

// chainNode is one match of an increasing chain. prev is the arena index of
// the preceding match.
type chainNode struct {
	i, j int32
	prev int32
}

// rootNode is the arena index of the (0, 0) node every chain starts from.
const rootNode int32 = 0

// chainArena owns every chainNode created during one solve. Replaced chains
// are never freed individually; the arena is dropped as a whole.
type chainArena struct {
	nodes    []chainNode
	overflow bool
}

func newChainArena(sizeHint int) *chainArena {
	a := &chainArena{nodes: make([]chainNode, 1, sizeHint+1)}
	a.nodes[rootNode] = chainNode{prev: -1}
	return a
}

func (a *chainArena) add(i, j, prev int32) int32 {
	if len(a.nodes) >= math.MaxInt32 {
		a.overflow = true
		return rootNode
	}
	a.nodes = append(a.nodes, chainNode{i: i, j: j, prev: prev})
	return int32(len(a.nodes) - 1)
}

// solver holds the state of one LCS computation.
type solver struct {
	x      *MatchIndex
	n, m   int
	thresh []int   // thresh[0..n+1]
	link   []int32 // link[k]: arena index of the chain ending at thresh[k]
	arena  *chainArena
}

func newSolver(x *MatchIndex) *solver {
	st := &solver{
		x:      x,
		n:      x.n,
		m:      x.m,
		thresh: make([]int, x.n+2),
		link:   make([]int32, x.n+2),
		arena:  newChainArena(min(x.n, x.m)),
	}
	for k := 1; k <= x.n+1; k++ {
		st.thresh[k] = x.m + 1
	}
	return st
}

// runSolver fills the threshold array and chains for x using strategy s.
func runSolver(x *MatchIndex, s Strategy) (*solver, error) {
	if x.order != s.matchOrder() {
		return nil, fmt.Errorf("strategy %s: match index built in the wrong order", s)
	}
	st := newSolver(x)
	switch s {
	case HuntSzymanski:
		st.huntSzymanski()
	case KuoCross:
		st.kuoCross(false)
	case KuoCrossBinary:
		st.kuoCross(true)
	case HuntMcIlroy:
		st.huntMcIlroy()
	default:
		return nil, fmt.Errorf("strategy %d: %w", int(s), ErrUnknownStrategy)
	}
	if st.arena.overflow {
		return nil, fmt.Errorf("chain arena full: %w", ErrTooLarge)
	}
	return st, nil
}

// search returns the smallest k >= lo with thresh[k] >= j.
func (st *solver) search(lo, j int) int {
	k, _ := slices.BinarySearch(st.thresh[lo:st.n+2], j)
	return lo + k
}

// huntSzymanski visits matches in decreasing j, so a slot updated earlier
// in the row always holds a larger j and can never be extended by the same
// row.
func (st *solver) huntSzymanski() {
	x := st.x
	for i := 1; i <= st.n; i++ {
		for j := x.headA[i]; j != 0; j = x.nextB[j] {
			k := st.search(0, int(j))
			if int(j) < st.thresh[k] {
				st.thresh[k] = int(j)
				st.link[k] = st.arena.add(int32(i), j, st.link[k-1])
			}
		}
	}
}

// kuoCross visits matches in increasing j, so the slot found for each
// match never decreases within a row. The write of each new chain into
// link is delayed until the next chain of the row is created, which keeps
// link[k-1] at its value from before the row.
func (st *solver) kuoCross(binary bool) {
	x := st.x
	for i := 1; i <= st.n; i++ {
		k, temp, r := 0, 0, 0
		c := st.link[0]
		for j := x.headA[i]; j != 0; j = x.nextB[j] {
			jj := int(j)
			if jj <= temp {
				continue
			}
			if binary {
				k = st.search(k, jj)
			} else {
				k++
				for jj > st.thresh[k] {
					k++
				}
			}
			temp = st.thresh[k]
			if jj < temp {
				st.thresh[k] = jj
				prev := st.link[k-1]
				st.link[r] = c
				r = k
				c = st.arena.add(int32(i), j, prev)
			}
		}
		st.link[r] = c
	}
}

// huntMcIlroy keeps the candidates in cand[0..k+1], where cand[k+1] is a
// fence node at (n+1, m+1). As in kuoCross, the candidate for slot r is
// stored only once the next one is found.
func (st *solver) huntMcIlroy() {
	x := st.x
	nodes := func(p int32) chainNode { return st.arena.nodes[p] }
	cand := make([]int32, min(st.n, st.m)+2)
	cand[0] = rootNode
	cand[1] = st.arena.add(int32(st.n+1), int32(st.m+1), -1)
	k := 0
	for i := 1; i <= st.n; i++ {
		if x.headA[i] == 0 {
			continue
		}
		r := 0
		c := cand[0]
		for j := x.headA[i]; j != 0; j = x.nextB[j] {
			lo, hi := r, k+1
			for lo < hi {
				mid := int(uint(lo+hi) >> 1)
				if nodes(cand[mid]).j < j {
					lo = mid + 1
				} else {
					hi = mid
				}
			}
			s := lo
			if s > r {
				s--
			}
			if nodes(cand[s]).j < j && j < nodes(cand[s+1]).j {
				prev := cand[s]
				cand[r] = c
				r = s + 1
				c = st.arena.add(int32(i), j, prev)
				if s == k {
					cand[k+2] = cand[k+1]
					k++
					break
				}
			}
		}
		cand[r] = c
	}
	for s := 1; s <= k; s++ {
		st.thresh[s] = int(nodes(cand[s]).j)
		st.link[s] = cand[s]
	}
}
