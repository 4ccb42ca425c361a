package builder

import (
	"fmt"

	"github.com/katalvlaran/twitterverse/core"
)

const (
	methodComplete   = "Complete"
	minCompleteUsers = 1
)

// Complete returns a Constructor where each of n users follows every other
// user in ascending index order. Complexity: O(n²) follows.
func Complete(n int) Constructor {
	return func(db *core.Database, cfg builderConfig) error {
		if n < minCompleteUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteUsers, ErrTooFewUsers)
		}
		for i := 0; i < n; i++ {
			u := newUser(cfg, i)
			for j := 0; j < n; j++ {
				if j != i {
					u.Following = append(u.Following, cfg.idFn(j))
				}
			}
			if err := merge(db, methodComplete, u); err != nil {
				return err
			}
		}

		return nil
	}
}
