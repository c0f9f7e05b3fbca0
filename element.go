package lcsdiff

import (
	"hash/fnv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Element represents a comparable unit (line, word, token).
// Implementations must provide equality comparison and hashing.
// Equal must be an equivalence relation.
type Element interface {
	// Equal reports whether this element is equal to another.
	Equal(other Element) bool
	// Hash returns a hash value for this element.
	// Equal elements must have equal hashes.
	Hash() uint64
}

// StringElement is the common case for line/word comparison.
type StringElement string

// Equal reports whether s equals other.
// Returns false if other is not a StringElement.
func (s StringElement) Equal(other Element) bool {
	o, ok := other.(StringElement)
	if !ok {
		return false
	}
	return s == o
}

// Hash returns a FNV-1a hash of the string.
func (s StringElement) Hash() uint64 {
	return hashString(string(s))
}

// keyedElement compares by a normalized key instead of the raw text.
type keyedElement struct {
	key string
}

func (k keyedElement) Equal(other Element) bool {
	o, ok := other.(keyedElement)
	if !ok {
		return false
	}
	return k.key == o.key
}

func (k keyedElement) Hash() uint64 {
	return hashString(k.key)
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// toElements converts a slice of strings to a slice of Elements, applying
// the comparison policy selected in o.
func toElements(strs []string, o *options) []Element {
	elems := make([]Element, len(strs))
	normalize := normalizer(o)
	for i, s := range strs {
		if normalize == nil {
			elems[i] = StringElement(s)
		} else {
			elems[i] = keyedElement{key: normalize(s)}
		}
	}
	return elems
}

// normalizer returns the line normalization for o, or nil for exact
// comparison. The returned function is not safe for concurrent use.
func normalizer(o *options) func(string) string {
	if !o.ignoreCase && !o.ignoreSpaceChange && !o.ignoreAllSpace {
		return nil
	}
	var fold cases.Caser
	if o.ignoreCase {
		fold = cases.Fold()
	}
	return func(s string) string {
		switch {
		case o.ignoreAllSpace:
			s = removeSpace(s)
		case o.ignoreSpaceChange:
			s = squeezeSpace(s)
		}
		if o.ignoreCase {
			s = fold.String(s)
		}
		return s
	}
}

func removeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// squeezeSpace collapses each run of white space to one blank and drops
// trailing white space, line terminator included.
func squeezeSpace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = true
			continue
		}
		if pending {
			sb.WriteByte(' ')
			pending = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
