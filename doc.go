// Package twitterverse answers queries over an in-memory Twitter-style follow
// graph: start from one user, hop across "following" and "followers" edges,
// filter the reached users and present them ranked.
//
// A query has three parts:
//
//	SEARCH   seed handle, then zero or more following/followers hops
//	FILTER   name-includes, location-includes, following, follower
//	PRESENT  sort-by username|name|popularity, format short|long
//
// Everything is organized under small subpackages:
//
//	core/      User records and the Database with its follower index
//	traverse/  hop-by-hop search with per-step deduplication
//	filter/    the four filter predicates and ordered filter specs
//	order/     comparators and the stable insertion sort
//	present/   short and long output formats
//	query/     the orchestrator and the instrumented Engine
//	ingest/    readers for the data-file and query-file formats
//	config/    YAML configuration
//	server/    HTTP transport
//	builder/   deterministic synthetic follow graphs
//
// Quick ASCII example:
//
//	ann ──▶ bob
//	 ▲       │
//	 └───────┘     cy ──▶ bob
//
// Searching from bob with [followers] reaches [ann cy]; adding the filter
// "follower bob" keeps only those bob follows back: [ann].
//
//	go install github.com/katalvlaran/twitterverse/cmd/twitterverse@latest
package twitterverse
