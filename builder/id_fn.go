package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a handle. It must be pure and injective.
type IDFn func(idx int) string

// DefaultIDFn returns "u" + idx, e.g. 0→"u0", 42→"u42".
func DefaultIDFn(idx int) string {
	return "u" + strconv.Itoa(idx)
}

// PrefixIDFn returns an IDFn producing prefix + idx.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// LetterIDFn returns the lowercase letter for idx in [0..25], e.g. 0→"a".
// Panics outside that range.
func LetterIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("LetterIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('a' + idx))
}
