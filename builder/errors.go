// SPDX-License-Identifier: MIT
// Package: twitterverse/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewUsers indicates a size parameter below a constructor's minimum.
var ErrTooFewUsers = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not complete, e.g. a nil
// constructor or a rejected user record.
var ErrConstructFailed = errors.New("builder: construction failed")
