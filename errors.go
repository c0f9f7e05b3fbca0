package lcsdiff

import "errors"

var (
	// ErrTooLarge is returned when a sequence has more positions than the
	// solver can address.
	ErrTooLarge = errors.New("lcsdiff: sequence too large")

	// ErrNilElement is returned when a sequence contains a nil Element.
	ErrNilElement = errors.New("lcsdiff: nil element")

	// ErrInconsistentElement is returned when an element is not Equal to
	// itself, so Equal cannot be an equivalence relation.
	ErrInconsistentElement = errors.New("lcsdiff: element not equal to itself")

	// ErrNegativeContext is returned for a negative context line count.
	ErrNegativeContext = errors.New("lcsdiff: negative context")
)

// ErrUnknownStrategy is returned for a Strategy value or name that does not
// name a known strategy.
var ErrUnknownStrategy = errors.New("lcsdiff: unknown strategy")
