// Package traverse provides the search stage of a twitterverse query:
// starting from one seed handle, it walks follow edges in a fixed sequence
// of operations and returns the resulting candidate set.
//
// What
//
//   - Search(db, seed, ops) starts with the frontier [seed].
//   - Each Operation replaces the frontier with the concatenation, in
//     frontier order, of every member's expansion:
//   - Following: the member's stored following list
//   - Followers: every user whose following list contains the member
//   - Duplicates are removed after every step, keeping first occurrences,
//     so later steps expand each handle exactly once.
//   - An empty operation list returns [seed] unchanged; the seed is never
//     validated on its own.
//
// Determinism
//
//	Following lists keep ingestion order and core.Database.Followers returns
//	handles ascending, so for a fixed database every search is reproducible.
//
// Complexity (k = len(ops), n = max frontier, d = average degree)
//
//   - Time:   O(k · n · d)
//   - Memory: O(n · d) for one step's expansion and its seen-set
//
// No cycle detection is needed: each step is bounded by the current frontier.
//
// Usage
//
//	ops, err := traverse.ParseOperations([]string{"following", "followers"})
//	handles, err := traverse.Search(db, "a", ops,
//	    traverse.WithContext(ctx),
//	    traverse.WithMaxFrontier(10_000),
//	    traverse.WithOnStep(func(step int, op traverse.Operation, f []string) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrDatabaseNil         if the database pointer is nil.
//   - ErrUnknownOperation    for an unrecognized operation name or value.
//   - ErrOptionViolation     for an invalid Option (negative MaxFrontier).
//   - ErrFrontierTooLarge    when a frontier exceeds WithMaxFrontier.
//   - core.ErrUserNotFound   (wrapped) when a Following step reaches a handle with no record.
//   - context errors         when the context is cancelled.
package traverse
