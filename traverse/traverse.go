package traverse

import (
	"context"
	"fmt"

	"github.com/katalvlaran/twitterverse/core"
)

// walker encapsulates mutable search state.
type walker struct {
	db       *core.Database
	opts     Options
	ctx      context.Context
	frontier []string
}

// Search starts from [seed] and applies ops in order. Each step replaces the
// frontier with the concatenated expansion of its members, then removes
// duplicates keeping first occurrences.
//
// An empty ops returns [seed] without consulting db, even if seed has no
// record. A Following step over a handle without a record fails with a
// wrapped core.ErrUserNotFound.
//
// Returns ErrDatabaseNil, ErrOptionViolation, ErrUnknownOperation,
// ErrFrontierTooLarge, a lookup error or the context error.
func Search(db *core.Database, seed string, ops []Operation, opts ...Option) ([]string, error) {
	if db == nil {
		return nil, ErrDatabaseNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		db:       db,
		opts:     o,
		ctx:      o.Ctx,
		frontier: []string{seed},
	}

	if err := w.loop(ops); err != nil {
		return nil, err
	}

	return w.frontier, nil
}

// loop runs every operation against the current frontier.
func (w *walker) loop(ops []Operation) error {
	for i, op := range ops {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		next, err := w.expand(op)
		if err != nil {
			return fmt.Errorf("traverse: step %d (%s): %w", i+1, op, err)
		}
		next = Dedup(next)
		if w.opts.MaxFrontier > 0 && len(next) > w.opts.MaxFrontier {
			return fmt.Errorf("%w: step %d yields %d handles (max %d)",
				ErrFrontierTooLarge, i+1, len(next), w.opts.MaxFrontier)
		}
		w.frontier = next
		w.opts.OnStep(i+1, op, w.frontier)
	}

	return nil
}

// expand applies op to every frontier member, checking for cancellation
// between members.
func (w *walker) expand(op Operation) ([]string, error) {
	out := make([]string, 0, len(w.frontier))
	for _, h := range w.frontier {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		next, err := step(w.db, h, op)
		if err != nil {
			return nil, err
		}
		out = append(out, next...)
	}

	return out, nil
}

// step returns the neighbors of one handle under op.
func step(db *core.Database, handle string, op Operation) ([]string, error) {
	switch op {
	case Following:
		return db.Following(handle)
	case Followers:
		return db.Followers(handle), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
}

// Expand performs a single operation over handles without deduplicating,
// so a handle reached from two members appears twice.
func Expand(db *core.Database, handles []string, op Operation) ([]string, error) {
	if db == nil {
		return nil, ErrDatabaseNil
	}
	out := make([]string, 0, len(handles))
	for _, h := range handles {
		next, err := step(db, h, op)
		if err != nil {
			return nil, err
		}
		out = append(out, next...)
	}

	return out, nil
}

// Dedup returns handles with repeats removed, preserving the order of first
// occurrence. The input is not modified.
func Dedup(handles []string) []string {
	seen := make(map[string]struct{}, len(handles))
	out := make([]string, 0, len(handles))
	for _, h := range handles {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}

	return out
}
