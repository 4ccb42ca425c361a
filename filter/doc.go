// Package filter provides the filter stage of a twitterverse query.
//
// A Spec maps each Kind to one string argument:
//
//	name-includes      case-insensitive substring of the display name
//	location-includes  case-insensitive substring of the location
//	following          the candidate follows the argument
//	follower           the argument follows the candidate
//
// All applies the kinds in the order they were first set, each pass
// narrowing the previous one. Candidates are never reordered, and an empty
// result is a valid result that flows on unchanged.
//
// Setting the same kind twice keeps the last argument.
package filter
