package lcsdiff

import (
	"math"

	"github.com/golang/glog"
)

// endSentinel is the coordinate of the final pair of an LCS. It is larger
// than any real position, so the pair before it is always followed by a
// change.
const endSentinel = math.MaxInt

// Pair is a matched pair of 1-based positions, A[A] == B[B].
type Pair struct {
	A, B int
}

// LCS is a longest common subsequence of two sequences, stored as the
// positions of its matched pairs.
//
// Index k of the pair arrays runs from 0 to Len()+2:
//   - k == 0 is (0, 0)
//   - 1 <= k <= Len() are the matched pairs, strictly increasing in both A and B
//   - k == Len()+1 is (len(A)+1, len(B)+1)
//   - k == Len()+2 is an end sentinel larger than any position
type LCS struct {
	a, b []int
}

// Len returns the number of matched pairs.
func (l *LCS) Len() int {
	return len(l.a) - 3
}

// At returns pair k, sentinels included.
func (l *LCS) At(k int) Pair {
	return Pair{A: l.a[k], B: l.b[k]}
}

// Pairs returns the matched pairs in increasing order.
func (l *LCS) Pairs() []Pair {
	pairs := make([]Pair, l.Len())
	for k := range pairs {
		pairs[k] = l.At(k + 1)
	}
	return pairs
}

// Identical reports whether every element of A was matched with every
// element of B, in which case there is nothing to diff.
func (l *LCS) Identical() bool {
	last := l.At(l.Len() + 1)
	return l.Len() == last.A-1 && l.Len() == last.B-1
}

// Solve computes a longest common subsequence of a and b.
func Solve(a, b []Element, opts ...Option) (*LCS, error) {
	return solve(a, b, applyOptions(opts))
}

// SolveStrings computes a longest common subsequence of two string slices
// under the comparison policy selected by opts.
func SolveStrings(a, b []string, opts ...Option) (*LCS, error) {
	o := applyOptions(opts)
	return solve(toElements(a, o), toElements(b, o), o)
}

func solve(a, b []Element, o *options) (*LCS, error) {
	x, err := buildMatchIndex(a, b, o.strategy.matchOrder())
	if err != nil {
		return nil, err
	}
	st, err := runSolver(x, o.strategy)
	if err != nil {
		return nil, err
	}
	l := st.extract()
	if glog.V(2) {
		glog.Infof("solve: strategy %s, %d lines from A, %d lines from B, %d chain nodes, lcs length %d",
			o.strategy, len(a), len(b), len(st.arena.nodes)-1, l.Len())
	}
	return l, nil
}

// extract recovers the LCS from the longest chain. The solver state can be
// discarded afterwards.
func (st *solver) extract() *LCS {
	n := 0
	for n < st.n && st.thresh[n+1] != st.m+1 {
		n++
	}

	l := &LCS{
		a: make([]int, n+3),
		b: make([]int, n+3),
	}
	l.a[n+1], l.b[n+1] = st.n+1, st.m+1
	l.a[n+2], l.b[n+2] = endSentinel, endSentinel

	p := st.link[n]
	for k := n; k > 0; k-- {
		node := st.arena.nodes[p]
		l.a[k], l.b[k] = int(node.i), int(node.j)
		p = node.prev
	}
	return l
}
