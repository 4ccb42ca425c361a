// SPDX-License-Identifier: MIT
// Package: twitterverse/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Option constructors panic on meaningless input (nil functions); the
// constructors themselves never panic.

package builder

import (
	"math/rand"
	"strconv"
)

// BuilderOption customizes a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// ProfileFn fills the display fields of the user at index idx.
type ProfileFn func(idx int, handle string) (name, location string)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	profileFn ProfileFn
}

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		profileFn: defaultProfile,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// defaultProfile names user "u7" as "User 7" with no location.
func defaultProfile(idx int, _ string) (string, string) {
	return "User " + strconv.Itoa(idx), ""
}

// WithIDScheme sets the handle generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand sets the RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG; use it to freeze RandomSparse fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithProfileFn sets how generated users are named and located. Panics on nil.
func WithProfileFn(fn ProfileFn) BuilderOption {
	if fn == nil {
		panic("builder: WithProfileFn(nil)")
	}
	return func(c *builderConfig) { c.profileFn = fn }
}
