package lcsdiff

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/golang/glog"
)

// maxPositions bounds the length of a sequence so that every position,
// plus the len+1 fence, fits in an int32.
const maxPositions = math.MaxInt32 - 2

// matchOrder is the order in which the B positions of one A row are listed.
type matchOrder int

const (
	ascending matchOrder = iota
	descending
)

// MatchIndex lists, for every position of A, the positions of B holding an
// equal element, and the reverse. All positions are 1-based.
//
// Positions whose elements are equal share a single chain: every A position
// of an equivalence class points at the same head, so the index is linear
// in the sequence lengths even when the number of matching pairs is not.
type MatchIndex struct {
	n, m    int
	order   matchOrder
	headA   []int32 // headA[i]: first B position matching A[i]; 0 if none
	nextB   []int32 // nextB[j]: B position after j in its class; 0 at end
	headB   []int32 // headB[j]: first A position matching B[j]; 0 if none
	nextA   []int32 // nextA[i]: A position after i in its class; 0 at end
	matches int
}

// BuildMatchIndex builds the match index of a and b with lists ordered the
// way strategy s visits them.
func BuildMatchIndex(a, b []Element, s Strategy) (*MatchIndex, error) {
	return buildMatchIndex(a, b, s.matchOrder())
}

func buildMatchIndex(a, b []Element, order matchOrder) (*MatchIndex, error) {
	if len(a) > maxPositions || len(b) > maxPositions {
		return nil, fmt.Errorf("%d and %d elements: %w", len(a), len(b), ErrTooLarge)
	}

	c := newClassifier()
	as, err := c.entries(a, "A")
	if err != nil {
		return nil, err
	}
	bs, err := c.entries(b, "B")
	if err != nil {
		return nil, err
	}
	sortEntries(as, order)
	sortEntries(bs, order)

	x := &MatchIndex{
		n:     len(a),
		m:     len(b),
		order: order,
		headA: make([]int32, len(a)+1),
		nextA: make([]int32, len(a)+1),
		headB: make([]int32, len(b)+1),
		nextB: make([]int32, len(b)+1),
	}

	// Merge the two sorted lists by class. Prepending while scanning a run
	// reverses the position order, which is why sortEntries sorts ties
	// opposite to the wanted list order.
	ai, bi := 0, 0
	for ai < len(as) && bi < len(bs) {
		ca, cb := as[ai].class, bs[bi].class
		switch {
		case ca < cb:
			ai++
		case ca > cb:
			bi++
		default:
			b0 := bi
			var bHead int32
			for bi < len(bs) && bs[bi].class == cb {
				x.nextB[bs[bi].pos] = bHead
				bHead = bs[bi].pos
				bi++
			}
			a0 := ai
			var aHead int32
			for ai < len(as) && as[ai].class == ca {
				x.nextA[as[ai].pos] = aHead
				aHead = as[ai].pos
				ai++
			}
			for k := a0; k < ai; k++ {
				x.headA[as[k].pos] = bHead
			}
			for k := b0; k < bi; k++ {
				x.headB[bs[k].pos] = aHead
			}
			x.matches += (ai - a0) * (bi - b0)
		}
	}

	if glog.V(2) {
		glog.Infof("buildMatchIndex: %d lines from A, %d lines from B, %d classes, %d matches",
			len(a), len(b), c.next, x.matches)
	}
	return x, nil
}

// Matches returns the number of matching (A, B) position pairs.
func (x *MatchIndex) Matches() int {
	return x.matches
}

// MatchesInA returns the B positions whose element equals A[i].
func (x *MatchIndex) MatchesInA(i int) []int {
	if i < 1 || i > x.n {
		return nil
	}
	var js []int
	for j := x.headA[i]; j != 0; j = x.nextB[j] {
		js = append(js, int(j))
	}
	return js
}

// MatchesInB returns the A positions whose element equals B[j].
func (x *MatchIndex) MatchesInB(j int) []int {
	if j < 1 || j > x.m {
		return nil
	}
	var is []int
	for i := x.headB[j]; i != 0; i = x.nextA[i] {
		is = append(is, int(i))
	}
	return is
}

// entry is one position of a sequence tagged with its equivalence class.
type entry struct {
	class int32
	pos   int32
}

func sortEntries(es []entry, order matchOrder) {
	slices.SortFunc(es, func(x, y entry) int {
		if c := cmp.Compare(x.class, y.class); c != 0 {
			return c
		}
		if order == descending {
			return cmp.Compare(x.pos, y.pos)
		}
		return cmp.Compare(y.pos, x.pos)
	})
}

// classifier assigns each distinct element an equivalence class id.
// Hash narrows the candidates and Equal settles collisions.
type classifier struct {
	buckets map[uint64][]classRep
	next    int32
}

type classRep struct {
	elem Element
	id   int32
}

func newClassifier() *classifier {
	return &classifier{buckets: make(map[uint64][]classRep)}
}

func (c *classifier) entries(seq []Element, name string) ([]entry, error) {
	es := make([]entry, len(seq))
	for k, e := range seq {
		id, err := c.classOf(e)
		if err != nil {
			return nil, fmt.Errorf("sequence %s position %d: %w", name, k+1, err)
		}
		es[k] = entry{class: id, pos: int32(k + 1)}
	}
	return es, nil
}

func (c *classifier) classOf(e Element) (int32, error) {
	if e == nil {
		return 0, ErrNilElement
	}
	if !e.Equal(e) {
		return 0, ErrInconsistentElement
	}
	h := e.Hash()
	for _, rep := range c.buckets[h] {
		if rep.elem.Equal(e) {
			return rep.id, nil
		}
	}
	id := c.next
	c.next++
	c.buckets[h] = append(c.buckets[h], classRep{elem: e, id: id})
	return id, nil
}
