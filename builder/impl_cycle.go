package builder

import (
	"fmt"

	"github.com/katalvlaran/twitterverse/core"
)

const (
	methodCycle   = "Cycle"
	minCycleUsers = 2
)

// Cycle returns a Constructor where user i follows user (i+1) mod n, n ≥ 2.
func Cycle(n int) Constructor {
	return func(db *core.Database, cfg builderConfig) error {
		if n < minCycleUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleUsers, ErrTooFewUsers)
		}
		for i := 0; i < n; i++ {
			u := newUser(cfg, i)
			u.Following = append(u.Following, cfg.idFn((i+1)%n))
			if err := merge(db, methodCycle, u); err != nil {
				return err
			}
		}

		return nil
	}
}
