// File: types.go
// Role: User record, sentinel errors, Database layout and construction.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tidwall/btree"
)

// Sentinel errors for database operations.
var (
	// ErrNilUser indicates that a nil *User was passed to AddUser.
	ErrNilUser = errors.New("core: user is nil")

	// ErrEmptyHandle indicates that the provided User has an empty handle.
	ErrEmptyHandle = errors.New("core: user handle is empty")

	// ErrUserNotFound indicates an operation referenced a handle with no record.
	ErrUserNotFound = errors.New("core: user not found")
)

// User is one record of the twitterverse.
//
// Handle uniquely identifies the user within its Database. Following is the
// ordered list of handles this user follows; duplicates are disallowed by
// convention but not enforced.
type User struct {
	// Handle is the unique username.
	Handle string `json:"handle" yaml:"handle"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Location is free text, e.g. "Toronto, Ontario".
	Location string `json:"location" yaml:"location"`

	// Website is the user's homepage, stored verbatim.
	Website string `json:"website" yaml:"website"`

	// Bio is free text; multi-line bios are joined with "\n".
	Bio string `json:"bio" yaml:"bio"`

	// Following lists the handles this user follows, in ingestion order.
	Following []string `json:"following" yaml:"following"`
}

// clone returns a deep copy of u.
func (u *User) clone() *User {
	c := *u
	c.Following = append([]string(nil), u.Following...)

	return &c
}

// Option configures a Database before first use.
type Option func(db *Database)

// WithUsers seeds the database with the given users. Nil users and users
// with an empty handle are skipped and the first such failure is reported
// by Database.Err.
func WithUsers(users ...*User) Option {
	return func(db *Database) {
		for i, u := range users {
			if err := db.addUserLocked(u); err != nil && db.err == nil {
				db.err = fmt.Errorf("%w: WithUsers[%d]", err, i)
			}
		}
	}
}

// Database is the in-memory store of users.
//
// mu protects users and followers. users is an ordered map handle → *User;
// followers[followee] is the set of handles whose Following contains followee.
type Database struct {
	mu sync.RWMutex // guards users and followers

	users     *btree.Map[string, *User]
	followers map[string]map[string]struct{}

	err error // first option failure, set only during NewDatabase
}

// NewDatabase creates an empty Database and applies opts in order.
// Complexity: O(sum of seeded following lists).
func NewDatabase(opts ...Option) *Database {
	db := &Database{
		users:     btree.NewMap[string, *User](0),
		followers: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(db)
	}

	return db
}

// Err returns the first error recorded while applying the options given to
// NewDatabase, or nil.
func (db *Database) Err() error { return db.err }
