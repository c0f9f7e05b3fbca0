package lcsdiff

import "iter"

// atChange reports whether unmatched elements lie immediately before pair k
// in A or in B.
func (l *LCS) atChange(k int) bool {
	return l.a[k-1]+1 != l.a[k] || l.b[k-1]+1 != l.b[k]
}

// Locator walks an LCS from change to change.
type Locator struct {
	l *LCS
}

// NewLocator returns a Locator over l.
func NewLocator(l *LCS) *Locator {
	return &Locator{l: l}
}

// Advance scans forward from pair k to the next pair that follows a change.
// It returns that pair's index, the number of pairs stepped over (k's own
// pair included), and whether the scan reached the end sentinel instead of
// a real change.
//
// k must be in [0, Len()+1]; any other k reports the end immediately.
func (loc *Locator) Advance(k int) (next, common int, end bool) {
	last := loc.l.Len() + 2
	if k < 0 || k >= last {
		return last, 0, true
	}
	k0 := k
	k++
	for !loc.l.atChange(k) {
		k++
	}
	return k, k - k0, k == last
}

// Changes yields the index of every pair that follows a change, together
// with the number of pairs since the previous one. Changes before the
// first pair or after the last one are reported at index 1 and Len()+1.
func (loc *Locator) Changes() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		k, common, end := loc.Advance(0)
		for !end {
			if !yield(k, common) {
				return
			}
			k, common, end = loc.Advance(k)
		}
	}
}
