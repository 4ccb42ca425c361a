package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/twitterverse/core"
)

// predicate reports whether handle survives one filter.
type predicate func(db *core.Database, handle, arg string) (bool, error)

var predicates = map[Kind]predicate{
	NameIncludes: func(db *core.Database, handle, arg string) (bool, error) {
		u, err := db.User(handle)
		if err != nil {
			return false, err
		}
		return containsFold(u.Name, arg), nil
	},
	LocationIncludes: func(db *core.Database, handle, arg string) (bool, error) {
		u, err := db.User(handle)
		if err != nil {
			return false, err
		}
		return containsFold(u.Location, arg), nil
	},
	Following: func(db *core.Database, handle, arg string) (bool, error) {
		following, err := db.Following(handle)
		if err != nil {
			return false, err
		}
		return slices.Contains(following, arg), nil
	},
	Follower: func(db *core.Database, handle, arg string) (bool, error) {
		return slices.Contains(db.Followers(handle), arg), nil
	},
}

// containsFold reports whether sub occurs in s, ignoring case.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// Filter keeps the candidates that satisfy kind(arg), preserving order.
// The result is a fresh slice; candidates is not modified.
//
// NameIncludes, LocationIncludes and Following need the candidate's record;
// a candidate without one fails the whole call with a wrapped
// core.ErrUserNotFound rather than being skipped. Follower never fails.
func Filter(db *core.Database, candidates []string, kind Kind, arg string) ([]string, error) {
	if db == nil {
		return nil, ErrDatabaseNil
	}
	pred, ok := predicates[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	out := make([]string, 0, len(candidates))
	for _, h := range candidates {
		keep, err := pred(db, h, arg)
		if err != nil {
			return nil, fmt.Errorf("filter: %s %q on %q: %w", kind, arg, h, err)
		}
		if keep {
			out = append(out, h)
		}
	}

	return out, nil
}

// All applies every kind in spec, in spec.Kinds() order, each pass
// narrowing the previous result. A nil or empty spec returns a copy of
// candidates.
//
// The predicates commute, so the final set does not depend on the order;
// iterating in spec order keeps the first reported error deterministic.
func All(db *core.Database, candidates []string, spec *Spec) ([]string, error) {
	if db == nil {
		return nil, ErrDatabaseNil
	}
	out := append(make([]string, 0, len(candidates)), candidates...)
	for _, p := range spec.Pairs() {
		var err error
		if out, err = Filter(db, out, p.Kind, p.Arg); err != nil {
			return nil, err
		}
	}

	return out, nil
}
