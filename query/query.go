package query

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/twitterverse/core"
	"github.com/katalvlaran/twitterverse/filter"
	"github.com/katalvlaran/twitterverse/order"
	"github.com/katalvlaran/twitterverse/present"
	"github.com/katalvlaran/twitterverse/traverse"
)

// ErrMalformedSpec wraps every problem found by Spec.Validate.
var ErrMalformedSpec = errors.New("query: malformed specification")

// SearchSpec names the seed handle and the expansion steps.
type SearchSpec struct {
	Seed       string
	Operations []traverse.Operation
}

// PresentSpec chooses the ranking and the rendering.
type PresentSpec struct {
	SortBy order.SortKey
	Format present.Format
}

// Spec is one complete query.
type Spec struct {
	Search  SearchSpec
	Filter  *filter.Spec
	Present PresentSpec
}

// Validate rejects enum values outside their vocabularies. It does not
// consult any database, so an absent seed is not an error here.
func (s Spec) Validate() error {
	for i, op := range s.Search.Operations {
		if op != traverse.Following && op != traverse.Followers {
			return fmt.Errorf("%w: operation %d: %s", ErrMalformedSpec, i, op)
		}
	}
	for _, k := range s.Filter.Kinds() {
		if _, err := filter.ParseKind(k.String()); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedSpec, err)
		}
	}
	if _, err := s.Present.SortBy.Comparator(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSpec, err)
	}
	if _, err := s.Present.Format.MarshalText(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSpec, err)
	}

	return nil
}

// Answer runs spec against db and returns the ranked candidate set.
//
// Lookup errors from any stage are returned unchanged in their chain
// (errors.Is(err, core.ErrUserNotFound) holds); nothing is recovered.
func Answer(db *core.Database, spec Spec, opts ...traverse.Option) ([]string, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	found, err := traverse.Search(db, spec.Search.Seed, spec.Search.Operations, opts...)
	if err != nil {
		return nil, err
	}
	kept, err := filter.All(db, found, spec.Filter)
	if err != nil {
		return nil, err
	}
	cmp, _ := spec.Present.SortBy.Comparator()

	return order.Sort(db, kept, cmp), nil
}

// Render answers spec and formats the result.
func Render(db *core.Database, spec Spec, opts ...traverse.Option) (string, error) {
	handles, err := Answer(db, spec, opts...)
	if err != nil {
		return "", err
	}

	return present.Render(db, handles, spec.Present.Format)
}
