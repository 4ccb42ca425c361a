package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/twitterverse/filter"
	"github.com/katalvlaran/twitterverse/order"
	"github.com/katalvlaran/twitterverse/present"
	"github.com/katalvlaran/twitterverse/query"
	"github.com/katalvlaran/twitterverse/traverse"
)

// ReadQuery parses a query file:
//
//	SEARCH
//	seed handle
//	operation … (following | followers, zero or more)
//	FILTER
//	<kind> <argument> … (zero or more)
//	PRESENT
//	sort-by <username | name | popularity>
//	format <short | long>
//
// A filter argument is everything after the kind, trimmed, so it may contain
// spaces: "location-includes Toronto, Ontario" filters on "Toronto, Ontario",
// not on its last word. A kind with no argument is an error. A kind given
// twice keeps its last argument. The two PRESENT lines
// may come in either order. Unknown operations, kinds, sort keys and formats
// are errors.
func ReadQuery(r io.Reader) (query.Spec, error) {
	lr := newLineReader(r)
	var spec query.Spec

	head, err := lr.must(markSearch)
	if err != nil {
		return spec, err
	}
	if head != markSearch {
		return spec, lr.syntaxf("want %s, got %q", markSearch, head)
	}
	if spec.Search.Seed, err = lr.must("seed handle"); err != nil {
		return spec, err
	}

	names, err := lr.until(markFilter, "operation")
	if err != nil {
		return spec, err
	}
	if spec.Search.Operations, err = traverse.ParseOperations(names); err != nil {
		return spec, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	if spec.Filter, err = readFilters(lr); err != nil {
		return spec, err
	}
	if spec.Present, err = readPresent(lr); err != nil {
		return spec, err
	}

	return spec, nil
}

// readFilters reads "<kind> <arg>" lines up to PRESENT.
func readFilters(lr *lineReader) (*filter.Spec, error) {
	lines, err := lr.until(markPresent, "filter")
	if err != nil {
		return nil, err
	}
	spec := filter.NewSpec()
	for _, l := range lines {
		if l == "" {
			return nil, fmt.Errorf("%w: blank line in FILTER section", ErrSyntax)
		}
		name := strings.Fields(l)[0]
		kind, err := filter.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		arg := strings.TrimSpace(l[len(name):])
		if arg == "" {
			return nil, fmt.Errorf("%w: filter %q has no argument", ErrSyntax, name)
		}
		spec.Set(kind, arg)
	}

	return spec, nil
}

// readPresent reads the sort-by and format lines.
func readPresent(lr *lineReader) (query.PresentSpec, error) {
	var ps query.PresentSpec
	seen := map[string]bool{}
	for len(seen) < 2 {
		l, err := lr.must("sort-by or format")
		if err != nil {
			return ps, err
		}
		fields := strings.Fields(l)
		if len(fields) != 2 {
			return ps, lr.syntaxf("want \"<key> <value>\", got %q", l)
		}
		switch fields[0] {
		case "sort-by":
			if ps.SortBy, err = order.ParseSortKey(fields[1]); err != nil {
				return ps, fmt.Errorf("%w: %w", ErrSyntax, err)
			}
		case "format":
			if ps.Format, err = present.ParseFormat(fields[1]); err != nil {
				return ps, fmt.Errorf("%w: %w", ErrSyntax, err)
			}
		default:
			return ps, lr.syntaxf("unknown presentation key %q", fields[0])
		}
		if seen[fields[0]] {
			return ps, lr.syntaxf("duplicate presentation key %q", fields[0])
		}
		seen[fields[0]] = true
	}

	return ps, nil
}

// ReadQueryFile opens path and parses it with ReadQuery.
func ReadQueryFile(path string) (query.Spec, error) {
	f, err := openFile(path)
	if err != nil {
		return query.Spec{}, err
	}
	defer f.Close()

	return ReadQuery(f)
}
