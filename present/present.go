// Package present renders a ranked candidate set as text.
//
// Two formats exist. Short prints the handles as a bracketed list of
// single-quoted strings:
//
//	['a', 'b']
//
// Long prints one block per user, each opened by a separator line, and
// closes the whole listing with a final separator:
//
//	----------
//	a
//	name: Zed
//	location: Toronto, Ontario
//	website: www.Zed.com
//	bio:
//	I love to meet new people!
//	following: ['b']
//	----------
//
// An empty long listing is just the opening and closing separators.
package present

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/twitterverse/core"
)

// Separator opens every long block and closes a long listing.
const Separator = "----------"

// ErrUnknownFormat is returned for a format outside {short, long}.
var ErrUnknownFormat = errors.New("present: unknown format")

// Format selects a renderer.
type Format byte

const (
	_ Format = iota
	// Short renders ['a', 'b'].
	Short
	// Long renders one block per user.
	Long
)

// String returns the wire name of f.
func (f Format) String() string {
	switch f {
	case Short:
		return "short"
	case Long:
		return "long"
	default:
		return fmt.Sprintf("Format(%d)", byte(f))
	}
}

// ParseFormat maps "short" or "long" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "short":
		return Short, nil
	case "long":
		return Long, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if f != Short && f != Long {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(b []byte) error {
	v, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// List renders handles as ['a', 'b']. It is the Short format.
func List(handles []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, h := range handles {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(h)
		b.WriteByte('\'')
	}
	b.WriteByte(']')

	return b.String()
}

// LongUser renders the long block of one user, including its opening
// separator and trailing newline.
//
// Errors:
//   - core.ErrUserNotFound (wrapped) if handle has no record.
func LongUser(db *core.Database, handle string) (string, error) {
	u, err := db.User(handle)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", Separator, u.Handle)
	fmt.Fprintf(&b, "name: %s\n", u.Name)
	fmt.Fprintf(&b, "location: %s\n", u.Location)
	fmt.Fprintf(&b, "website: %s\n", u.Website)
	fmt.Fprintf(&b, "bio:\n%s\n", u.Bio)
	fmt.Fprintf(&b, "following: %s\n", List(u.Following))

	return b.String(), nil
}

// LongForm renders every handle's block followed by a closing separator.
func LongForm(db *core.Database, handles []string) (string, error) {
	var b strings.Builder
	if len(handles) == 0 {
		b.WriteString(Separator + "\n")
	}
	for _, h := range handles {
		block, err := LongUser(db, h)
		if err != nil {
			return "", err
		}
		b.WriteString(block)
	}
	b.WriteString(Separator + "\n")

	return b.String(), nil
}

// Render renders handles in format f.
func Render(db *core.Database, handles []string, f Format) (string, error) {
	switch f {
	case Short:
		return List(handles), nil
	case Long:
		return LongForm(db, handles)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
