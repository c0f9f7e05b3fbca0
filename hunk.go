package lcsdiff

import (
	"fmt"
	"strconv"
	"strings"
)

// Edit is one line of a hunk. Line numbers are 1-based; ALine is 0 for
// Insert and BLine is 0 for Delete.
type Edit struct {
	Type  OpType
	ALine int
	BLine int
}

// Hunk is a group of changes plus the unchanged lines around them.
//
// AStart and BStart are the header line numbers: the first line of the
// range, or, when the range is empty, the line just before it.
type Hunk struct {
	AStart, ACount int
	BStart, BCount int
	Edits          []Edit
}

// Header returns the "@@ -a,n +b,m @@" line of the hunk, omitting counts
// equal to 1.
func (h Hunk) Header() string {
	return h.header(false)
}

func (h Hunk) header(posix bool) string {
	var sb strings.Builder
	sb.WriteString("@@ -")
	sb.WriteString(formatRange(h.AStart, h.ACount, posix))
	sb.WriteString(" +")
	sb.WriteString(formatRange(h.BStart, h.BCount, posix))
	sb.WriteString(" @@")
	return sb.String()
}

func formatRange(start, count int, posix bool) string {
	if count == 1 && !posix {
		return strconv.Itoa(start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}

// DiffHunks compares two string slices and groups the changes into hunks.
func DiffHunks(a, b []string, opts ...Option) ([]Hunk, error) {
	o := applyOptions(opts)
	if o.context < 0 {
		return nil, fmt.Errorf("context %d: %w", o.context, ErrNegativeContext)
	}
	l, err := solve(toElements(a, o), toElements(b, o), o)
	if err != nil {
		return nil, err
	}
	return BuildHunks(l, o.context)
}

// DiffElementHunks compares arbitrary Element slices and groups the changes
// into hunks.
func DiffElementHunks(a, b []Element, opts ...Option) ([]Hunk, error) {
	o := applyOptions(opts)
	if o.context < 0 {
		return nil, fmt.Errorf("context %d: %w", o.context, ErrNegativeContext)
	}
	l, err := solve(a, b, o)
	if err != nil {
		return nil, err
	}
	return BuildHunks(l, o.context)
}

// BuildHunks groups the changes of l into hunks with nctx lines of context.
// Two changes separated by at most 2*nctx unchanged lines share a hunk.
func BuildHunks(l *LCS, nctx int) ([]Hunk, error) {
	if nctx < 0 {
		return nil, fmt.Errorf("context %d: %w", nctx, ErrNegativeContext)
	}

	var hunks []Hunk
	loc := NewLocator(l)
	k, _, end := loc.Advance(0)
	for !end {
		// k is the first change of a hunk; extend the hunk while the next
		// change is close enough to share context.
		first, last := k, k
		var common int
		k, common, end = loc.Advance(k)
		for !end && common <= 2*nctx {
			last = k
			k, common, end = loc.Advance(k)
		}
		hunks = append(hunks, l.hunk(first, last, nctx))
	}
	return hunks, nil
}

// hunk builds the hunk covering the changes at pairs first through last.
func (l *LCS) hunk(first, last, nctx int) Hunk {
	begin := max(first-1-nctx, 0)
	limit := min(last+nctx, l.Len()+1)

	h := Hunk{
		AStart: l.a[begin] + 1,
		BStart: l.b[begin] + 1,
	}
	h.ACount = l.a[limit] - h.AStart
	h.BCount = l.b[limit] - h.BStart

	// An empty range is numbered by the line before it, as GNU diff and
	// patch expect.
	if h.ACount == 0 {
		h.AStart--
	}
	if h.BCount == 0 {
		h.BStart--
	}

	for k := begin + 1; k <= limit; k++ {
		if l.atChange(k) {
			for n := l.a[k-1] + 1; n < l.a[k]; n++ {
				h.Edits = append(h.Edits, Edit{Type: Delete, ALine: n})
			}
			for n := l.b[k-1] + 1; n < l.b[k]; n++ {
				h.Edits = append(h.Edits, Edit{Type: Insert, BLine: n})
			}
		}
		if k < limit {
			h.Edits = append(h.Edits, Edit{Type: Equal, ALine: l.a[k], BLine: l.b[k]})
		}
	}
	return h
}
