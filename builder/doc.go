// Package builder generates deterministic follow graphs for tests, benchmarks
// and demos.
//
// A Constructor adds users and follow edges to a core.Database; BuildDatabase
// resolves the options once and runs constructors in order, so several
// topologies can be layered onto one database:
//
//	db, err := builder.BuildDatabase(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Star("hub", 50),
//		builder.RandomSparse(50, 0.05),
//	)
//
// Constructors that touch an existing handle append to its following list
// instead of replacing the record. Duplicate follows are never emitted.
//
// Topologies:
//
//	Star(hub, n)          n-1 fans following one hub
//	Cycle(n)              i follows i+1 (mod n)
//	Complete(n)           everyone follows everyone else
//	RandomSparse(n, p)    each ordered pair follows with probability p
//
// Determinism: equal options, seed and constructor order yield equal databases.
package builder
