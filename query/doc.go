// Package query answers one twitterverse query end to end.
//
// A Spec has three parts:
//
//	Search   seed handle + ordered traverse.Operation steps
//	Filter   *filter.Spec, applied in its iteration order
//	Present  order.SortKey + present.Format
//
// Answer(db, spec) = order.Sort(filter.All(traverse.Search(...)), comparator).
//
// Malformed specifications (enum values outside their vocabularies) are
// rejected with ErrMalformedSpec before any work is done. Lookup errors
// (core.ErrUserNotFound) propagate from whichever stage meets them. An empty
// result is not an error.
//
// Engine wraps Answer with slog logging, Prometheus metrics
// (twitterverse_queries_total, twitterverse_query_duration_seconds,
// twitterverse_query_results) and an optional frontier bound.
package query
