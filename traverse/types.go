package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal.
var (
	// ErrDatabaseNil is returned if a nil database pointer is passed.
	ErrDatabaseNil = errors.New("traverse: database is nil")

	// ErrUnknownOperation is returned for an operation outside {following, followers}.
	ErrUnknownOperation = errors.New("traverse: unknown operation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrFrontierTooLarge is returned when a step produces more handles
	// than WithMaxFrontier allows.
	ErrFrontierTooLarge = errors.New("traverse: frontier exceeds limit")
)

// Operation is one expansion step along follow edges.
type Operation byte

const (
	_ Operation = iota
	// Following replaces each handle with the handles it follows.
	Following
	// Followers replaces each handle with the handles that follow it.
	Followers
)

// String returns the wire name of op.
func (op Operation) String() string {
	switch op {
	case Following:
		return "following"
	case Followers:
		return "followers"
	default:
		return fmt.Sprintf("Operation(%d)", byte(op))
	}
}

// ParseOperation maps "following" / "followers" to an Operation.
// Anything else is ErrUnknownOperation; there is no default.
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "following":
		return Following, nil
	case "followers":
		return Followers, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
}

// ParseOperations parses every element of names, failing on the first bad one.
func ParseOperations(names []string) ([]Operation, error) {
	ops := make([]Operation, 0, len(names))
	for _, n := range names {
		op, err := ParseOperation(n)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, nil
}

// Option configures Search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation between and within steps.
	Ctx context.Context

	// OnStep is called after each step has been expanded and deduplicated.
	// step is 1-based; frontier must not be retained or mutated.
	OnStep func(step int, op Operation, frontier []string)

	// MaxFrontier, if > 0, aborts the search when a deduplicated frontier
	// grows past this many handles. 0 disables the limit.
	MaxFrontier int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, a no-op
// OnStep hook and no frontier limit.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnStep:      func(int, Operation, []string) {},
		MaxFrontier: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback that observes every frontier.
func WithOnStep(fn func(step int, op Operation, frontier []string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxFrontier bounds the frontier size.
//
//	n > 0: abort with ErrFrontierTooLarge once a frontier exceeds n
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxFrontier(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxFrontier cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxFrontier = n
	}
}
