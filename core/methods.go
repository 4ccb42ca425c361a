// File: methods.go
// Role: Database lifecycle (AddUser, Clone) and read-only queries.
//
// Determinism:
//   - Handles() and Followers() return handles in ascending order, which is
//     the database's iteration order.
//   - Following() returns the stored list in ingestion order.
//
// Concurrency:
//   - AddUser holds the write lock; every other method holds the read lock.
//   - Returned slices and *User values are copies; callers may mutate them.
package core

import (
	"fmt"
	"sort"
)

// AddUser inserts u, replacing any existing record with the same handle.
//
// Implementation:
//   - Stage 1: Validate u (ErrNilUser, ErrEmptyHandle).
//   - Stage 2: Under the write lock, drop the reverse-index entries of the
//     record being replaced, if any.
//   - Stage 3: Store a deep copy of u and index each followee once.
//
// Errors:
//   - ErrNilUser: if u == nil.
//   - ErrEmptyHandle: if u.Handle == "".
//
// Complexity:
//   - Time O(log V + |old.Following| + |u.Following|), Space O(|u.Following|).
func (db *Database) AddUser(u *User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.addUserLocked(u)
}

// addUserLocked is AddUser without locking. Caller must hold db.mu.
func (db *Database) addUserLocked(u *User) error {
	if u == nil {
		return ErrNilUser
	}
	if u.Handle == "" {
		return ErrEmptyHandle
	}

	if old, ok := db.users.Get(u.Handle); ok {
		for _, followee := range old.Following {
			unindexFollower(db, followee, old.Handle)
		}
	}

	stored := u.clone()
	db.users.Set(stored.Handle, stored)
	for _, followee := range stored.Following {
		indexFollower(db, followee, stored.Handle)
	}

	return nil
}

// indexFollower records follower → followee in the reverse index.
func indexFollower(db *Database, followee, follower string) {
	set, ok := db.followers[followee]
	if !ok {
		set = make(map[string]struct{})
		db.followers[followee] = set
	}
	set[follower] = struct{}{}
}

// unindexFollower removes follower → followee and drops empty buckets.
func unindexFollower(db *Database, followee, follower string) {
	set, ok := db.followers[followee]
	if !ok {
		return
	}
	delete(set, follower)
	if len(set) == 0 {
		delete(db.followers, followee)
	}
}

// User returns a copy of the record stored under handle.
//
// Errors:
//   - ErrUserNotFound: if no record exists.
func (db *Database) User(handle string) (*User, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	u, ok := db.users.Get(handle)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, handle)
	}

	return u.clone(), nil
}

// HasUser reports whether a record exists for handle (empty handle ⇒ false).
func (db *Database) HasUser(handle string) bool {
	if handle == "" {
		return false
	}
	db.mu.RLock()
	defer db.mu.RUnlock()

	_, ok := db.users.Get(handle)

	return ok
}

// Len returns the number of users. Complexity: O(1).
func (db *Database) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.users.Len()
}

// Handles returns every handle in iteration order (ascending).
// Complexity: O(V).
func (db *Database) Handles() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]string, 0, db.users.Len())
	db.users.Scan(func(handle string, _ *User) bool {
		out = append(out, handle)
		return true
	})

	return out
}

// Following returns the handles that handle follows, in stored order.
//
// Behavior highlights:
//   - The returned slice is a copy; an empty list yields an empty, non-nil slice.
//
// Errors:
//   - ErrUserNotFound: if handle has no record (lookup error).
//
// Complexity:
//   - Time O(log V + d), Space O(d).
func (db *Database) Following(handle string) ([]string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	u, ok := db.users.Get(handle)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, handle)
	}
	out := make([]string, len(u.Following))
	copy(out, u.Following)

	return out, nil
}

// Followers returns every handle whose Following contains handle, in the
// database's iteration order (ascending).
//
// Behavior highlights:
//   - Never fails: handle need not have a record of its own, which is how
//     dangling edges stay reachable.
//   - Followers are users, so every returned handle has a record.
//
// Complexity:
//   - Time O(k log k) for k followers, Space O(k).
func (db *Database) Followers(handle string) []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	set := db.followers[handle]
	out := make([]string, 0, len(set))
	for h := range set {
		out = append(out, h)
	}
	sort.Strings(out)

	return out
}

// FollowerCount returns len(Followers(handle)) without allocating.
func (db *Database) FollowerCount(handle string) int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.followers[handle])
}

// Clone returns a deep copy of the database. The clone shares no mutable
// state with db, so it can serve as an immutable snapshot for a batch of
// concurrent queries while db keeps ingesting.
// Complexity: O(V + E).
func (db *Database) Clone() *Database {
	db.mu.RLock()
	defer db.mu.RUnlock()

	c := NewDatabase()
	db.users.Scan(func(_ string, u *User) bool {
		_ = c.addUserLocked(u)
		return true
	})

	return c
}
