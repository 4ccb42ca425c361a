// SPDX-License-Identifier: MIT
// Package: twitterverse/builder
//
// api.go - BuildDatabase orchestrator and the shared merge helper.
//
// Contract:
//   - One orchestrator: BuildDatabase(bopts, cons...). Resolves cfg once, runs cons in order.
//   - Constructors validate first and return sentinel errors; they never panic.
//   - Determinism: same options, seed and constructor order give identical databases.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twitterverse/core"
)

// Constructor adds users and follow edges to db using the resolved config.
type Constructor func(db *core.Database, cfg builderConfig) error

// BuildDatabase creates an empty database, resolves bopts and applies every
// constructor in order. The first failure is wrapped as "BuildDatabase: %w".
func BuildDatabase(bopts []BuilderOption, cons ...Constructor) (*core.Database, error) {
	db := core.NewDatabase()
	if err := Apply(db, bopts, cons...); err != nil {
		return nil, err
	}

	return db, nil
}

// Apply runs cons against an existing database.
func Apply(db *core.Database, bopts []BuilderOption, cons ...Constructor) error {
	if db == nil {
		return fmt.Errorf("BuildDatabase: nil database: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildDatabase: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(db, cfg); err != nil {
			return fmt.Errorf("BuildDatabase: %w", err)
		}
	}

	return nil
}

// newUser builds the record for index idx with an empty following list.
func newUser(cfg builderConfig, idx int) *core.User {
	handle := cfg.idFn(idx)
	name, location := cfg.profileFn(idx, handle)

	return &core.User{Handle: handle, Name: name, Location: location, Following: []string{}}
}

// merge stores u, or appends its follows to an existing record with the
// same handle, skipping handles already followed.
func merge(db *core.Database, method string, u *core.User) error {
	if old, err := db.User(u.Handle); err == nil {
		seen := make(map[string]struct{}, len(old.Following))
		for _, h := range old.Following {
			seen[h] = struct{}{}
		}
		for _, h := range u.Following {
			if _, dup := seen[h]; !dup {
				seen[h] = struct{}{}
				old.Following = append(old.Following, h)
			}
		}
		u = old
	}
	if err := db.AddUser(u); err != nil {
		return fmt.Errorf("%s: AddUser(%q): %w: %w", method, u.Handle, ErrConstructFailed, err)
	}

	return nil
}
