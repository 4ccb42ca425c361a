package filter

import (
	"errors"
	"fmt"
)

// Sentinel errors for filtering.
var (
	// ErrDatabaseNil is returned if a nil database pointer is passed.
	ErrDatabaseNil = errors.New("filter: database is nil")

	// ErrUnknownKind is returned for a filter kind outside the fixed vocabulary.
	ErrUnknownKind = errors.New("filter: unknown filter kind")
)

// Kind names one predicate.
type Kind byte

const (
	_ Kind = iota
	// NameIncludes keeps users whose display name contains the argument, ignoring case.
	NameIncludes
	// LocationIncludes keeps users whose location contains the argument, ignoring case.
	LocationIncludes
	// Following keeps users who follow the argument.
	Following
	// Follower keeps users followed by the argument.
	Follower
)

var kindNames = map[Kind]string{
	NameIncludes:     "name-includes",
	LocationIncludes: "location-includes",
	Following:        "following",
	Follower:         "follower",
}

// String returns the wire name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", byte(k))
}

// ParseKind maps a wire name to its Kind; unknown names are ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Pair is one kind/argument entry, used to build a Spec.
type Pair struct {
	Kind Kind
	Arg  string
}

// Spec maps each Kind to a single argument and remembers the order in
// which kinds were first set. Setting a kind again replaces its argument
// but keeps its position, which is ordinary mapping semantics: the last
// value wins.
//
// The zero value is an empty, ready-to-use Spec.
type Spec struct {
	order []Kind
	args  map[Kind]string
}

// NewSpec builds a Spec from pairs applied in order.
func NewSpec(pairs ...Pair) *Spec {
	s := &Spec{}
	for _, p := range pairs {
		s.Set(p.Kind, p.Arg)
	}

	return s
}

// Set assigns arg to kind.
func (s *Spec) Set(kind Kind, arg string) {
	if s.args == nil {
		s.args = make(map[Kind]string)
	}
	if _, ok := s.args[kind]; !ok {
		s.order = append(s.order, kind)
	}
	s.args[kind] = arg
}

// Get returns the argument stored for kind.
func (s *Spec) Get(kind Kind) (string, bool) {
	if s == nil {
		return "", false
	}
	arg, ok := s.args[kind]

	return arg, ok
}

// Len returns the number of distinct kinds. A nil Spec is empty.
func (s *Spec) Len() int {
	if s == nil {
		return 0
	}

	return len(s.order)
}

// Kinds returns the kinds in first-insertion order.
func (s *Spec) Kinds() []Kind {
	if s == nil {
		return nil
	}

	return append([]Kind(nil), s.order...)
}

// Pairs returns the entries in iteration order.
func (s *Spec) Pairs() []Pair {
	out := make([]Pair, 0, s.Len())
	for _, k := range s.Kinds() {
		out = append(out, Pair{Kind: k, Arg: s.args[k]})
	}

	return out
}
