// SPDX-License-Identifier: MIT
// Package: twitterverse/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi style follow graph.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewUsers); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required unless p is 0 or 1 (else ErrNeedRandSource).
//   - Ordered pairs (i,j), i≠j, are drawn i asc then j asc; no self-follows.
//
// Determinism: one rng draw per ordered pair in that fixed order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twitterverse/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseUsers = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomSparse returns a Constructor where each ordered pair follows with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(db *core.Database, cfg builderConfig) error {
		if n < minRandomSparseUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseUsers, ErrTooFewUsers)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			u := newUser(cfg, i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if keep(cfg, p) {
					u.Following = append(u.Following, cfg.idFn(j))
				}
			}
			if err := merge(db, methodRandomSparse, u); err != nil {
				return err
			}
		}

		return nil
	}
}

// keep decides one pair; p of exactly 0 or 1 never consumes the rng.
func keep(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
