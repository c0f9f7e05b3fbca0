// Package lcsdiff computes the longest common subsequence of two sequences
// and renders the result as a unified diff.
//
// The solver is a threshold (patience-sort) algorithm in the Hunt–Szymanski
// family. Unlike Myers-style implementations, lcsdiff:
//   - Builds the match lists with a sort-and-merge join over equivalence classes
//   - Supports several interchangeable threshold search strategies
//   - Always returns a maximum-length common subsequence; no heuristics
//
// The result of Solve is consumed by a change locator and a hunk formatter
// that group changes with a configurable amount of context.
package lcsdiff

// OpType identifies the type of edit operation.
type OpType int

const (
	// Equal means the elements are unchanged.
	Equal OpType = iota
	// Insert means elements were added to B that are not in A.
	Insert
	// Delete means elements were removed from A that are not in B.
	Delete
)

// String returns a string representation of the OpType.
func (t OpType) String() string {
	switch t {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// DiffOp represents a single edit operation with index ranges.
// Indices are 0-based, unlike the 1-based positions of LCS and Hunk.
type DiffOp struct {
	Type   OpType
	AStart int // start index in sequence A (inclusive)
	AEnd   int // end index in sequence A (exclusive)
	BStart int // start index in sequence B (inclusive)
	BEnd   int // end index in sequence B (exclusive)
}

// DefaultContext is the number of unchanged lines shown around each change.
const DefaultContext = 3

// options holds configuration for solving and rendering.
type options struct {
	strategy          Strategy
	context           int
	ignoreCase        bool
	ignoreSpaceChange bool
	ignoreAllSpace    bool
	posixRanges       bool
	color             bool
	newlineMarker     bool
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		strategy: KuoCrossBinary,
		context:  DefaultContext,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures diff behavior.
type Option func(*options)

// WithStrategy selects the threshold search strategy used by the solver.
// All strategies produce the same result.
// Default: KuoCrossBinary.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithContext sets the number of unchanged lines shown around changes.
// Zero produces hunks containing only changed lines.
// Default: 3.
func WithContext(n int) Option {
	return func(o *options) {
		o.context = n
	}
}

// WithIgnoreCase compares lines without regard to case.
// Default: false.
func WithIgnoreCase(enabled bool) Option {
	return func(o *options) {
		o.ignoreCase = enabled
	}
}

// WithIgnoreSpaceChange treats runs of white space as a single space and
// ignores white space at the end of a line.
// Default: false.
func WithIgnoreSpaceChange(enabled bool) Option {
	return func(o *options) {
		o.ignoreSpaceChange = enabled
	}
}

// WithIgnoreAllSpace ignores all white space when comparing lines.
// Default: false.
func WithIgnoreAllSpace(enabled bool) Option {
	return func(o *options) {
		o.ignoreAllSpace = enabled
	}
}

// WithPOSIXRanges always prints the line count in hunk headers, even when
// it is 1 ("@@ -3,1 +3,1 @@" instead of "@@ -3 +3 @@").
// Default: false.
func WithPOSIXRanges(enabled bool) Option {
	return func(o *options) {
		o.posixRanges = enabled
	}
}

// WithColor renders headers and changed lines with ANSI colors.
// Default: false.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// WithNewlineMarker makes the renderer expect lines that carry their own
// terminators and print "\ No newline at end of file" after a line that
// lacks one.
// Default: false.
func WithNewlineMarker(enabled bool) Option {
	return func(o *options) {
		o.newlineMarker = enabled
	}
}

// Diff compares two string slices and returns edit operations.
func Diff(a, b []string, opts ...Option) ([]DiffOp, error) {
	o := applyOptions(opts)
	return diffElements(toElements(a, o), toElements(b, o), o)
}

// DiffElements compares arbitrary Element slices.
func DiffElements(a, b []Element, opts ...Option) ([]DiffOp, error) {
	return diffElements(a, b, applyOptions(opts))
}

func diffElements(a, b []Element, o *options) ([]DiffOp, error) {
	// Handle trivial cases
	if len(a) == 0 && len(b) == 0 {
		return nil, nil
	}

	l, err := solve(a, b, o)
	if err != nil {
		return nil, err
	}
	return l.ops(), nil
}
