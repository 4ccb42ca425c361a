// SPDX-License-Identifier: MIT
// Package: twitterverse/builder
//
// impl_star.go - Star(hub, n): one celebrity and n-1 fans.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewUsers).
//   - The hub keeps the caller-given handle; fans take cfg.idFn(1..n-1).
//   - Every fan follows the hub; the hub follows nobody.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twitterverse/core"
)

const (
	methodStar   = "Star"
	minStarUsers = 2
)

// Star returns a Constructor for a star of n users centred on hub.
func Star(hub string, n int) Constructor {
	return func(db *core.Database, cfg builderConfig) error {
		if n < minStarUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarUsers, ErrTooFewUsers)
		}

		name, location := cfg.profileFn(0, hub)
		center := &core.User{Handle: hub, Name: name, Location: location, Following: []string{}}
		if err := merge(db, methodStar, center); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			fan := newUser(cfg, i)
			fan.Following = append(fan.Following, hub)
			if err := merge(db, methodStar, fan); err != nil {
				return err
			}
		}

		return nil
	}
}
