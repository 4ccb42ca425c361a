// Package order ranks a candidate set with one of three comparators and a
// stable insertion sort.
//
// Every comparator is a total order over handles that falls back to
// ByUsername on ties, so for a fixed database the sorted result does not
// depend on the input order.
package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/twitterverse/core"
)

// ErrUnknownSortKey is returned for a sort key outside {username, name, popularity}.
var ErrUnknownSortKey = errors.New("order: unknown sort key")

// Comparator ranks two handles within a database.
//
// Compare returns a negative number when a sorts before b, a positive
// number when a sorts after b, and zero when their positions are equal.
type Comparator interface {
	Compare(db *core.Database, a, b string) int
}

// ComparatorFunc adapts a plain function to Comparator.
type ComparatorFunc func(db *core.Database, a, b string) int

// Compare calls f(db, a, b).
func (f ComparatorFunc) Compare(db *core.Database, a, b string) int { return f(db, a, b) }

type byUsername struct{}

// ByUsername orders handles lexicographically by byte value.
var ByUsername Comparator = byUsername{}

func (byUsername) Compare(_ *core.Database, a, b string) int {
	return strings.Compare(a, b)
}

type byName struct{}

// ByName orders by display name, then by handle. A handle without a
// record compares with an empty name.
var ByName Comparator = byName{}

func (byName) Compare(db *core.Database, a, b string) int {
	if c := strings.Compare(displayName(db, a), displayName(db, b)); c != 0 {
		return c
	}

	return ByUsername.Compare(db, a, b)
}

func displayName(db *core.Database, handle string) string {
	u, err := db.User(handle)
	if err != nil {
		return ""
	}

	return u.Name
}

type byPopularity struct{}

// ByPopularity puts users with more followers first, then orders by handle.
var ByPopularity Comparator = byPopularity{}

func (byPopularity) Compare(db *core.Database, a, b string) int {
	na, nb := db.FollowerCount(a), db.FollowerCount(b)
	switch {
	case na > nb:
		return -1
	case na < nb:
		return 1
	}

	return ByUsername.Compare(db, a, b)
}

// Sort returns a sorted copy of handles. The sort is a stable insertion
// sort, so handles that compare equal keep their relative order; handles
// itself is not modified.
//
// Complexity: O(n²) comparisons in the worst case, O(n) when already sorted.
func Sort(db *core.Database, handles []string, cmp Comparator) []string {
	out := append(make([]string, 0, len(handles)), handles...)
	for i := 1; i < len(out); i++ {
		cur := out[i]
		pos := i
		for pos > 0 && cmp.Compare(db, out[pos-1], cur) > 0 {
			out[pos] = out[pos-1]
			pos--
		}
		out[pos] = cur
	}

	return out
}

// SortKey selects a Comparator by name.
type SortKey byte

const (
	_ SortKey = iota
	// Username selects ByUsername.
	Username
	// Name selects ByName.
	Name
	// Popularity selects ByPopularity.
	Popularity
)

// String returns the wire name of k.
func (k SortKey) String() string {
	switch k {
	case Username:
		return "username"
	case Name:
		return "name"
	case Popularity:
		return "popularity"
	default:
		return fmt.Sprintf("SortKey(%d)", byte(k))
	}
}

// ParseSortKey maps "username", "name" or "popularity" to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "username":
		return Username, nil
	case "name":
		return Name, nil
	case "popularity":
		return Popularity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}

// Comparator returns the comparator k selects.
func (k SortKey) Comparator() (Comparator, error) {
	switch k {
	case Username:
		return ByUsername, nil
	case Name:
		return ByName, nil
	case Popularity:
		return ByPopularity, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSortKey, k)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k SortKey) MarshalText() ([]byte, error) {
	if _, err := k.Comparator(); err != nil {
		return nil, err
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SortKey) UnmarshalText(b []byte) error {
	v, err := ParseSortKey(string(b))
	if err != nil {
		return err
	}
	*k = v

	return nil
}
