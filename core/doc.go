// Package core provides the in-memory user database of a twitterverse and
// the two graph accessors every query is built on.
//
// The database D = (U, F) is a directed graph: each User is a vertex keyed by
// its handle, and every entry of User.Following is an edge handle→followee.
//
//   - Ordered storage: users live in a B-tree keyed by handle, so iteration
//     (Handles, Followers) is ascending by handle on every platform.
//   - Reverse index: followers[followee][follower] = struct{}{} is kept in
//     step with AddUser, so Followers and FollowerCount never scan U.
//   - Read-mostly locking: a single sync.RWMutex guards the tree and the
//     reverse index. Queries take the read lock; only ingestion writes.
//   - Dangling edges are legal: a user may follow a handle that has no record.
//
// Accessors:
//
//	Following(handle) ([]string, error) // stored list; ErrUserNotFound if absent
//	Followers(handle) []string          // never errors; handle need not exist
//	FollowerCount(handle) int           // len(Followers(handle)) in O(1)
//
// Lifecycle:
//
//	NewDatabase(opts ...Option) *Database
//	AddUser(u *User) error              // replaces an existing record
//	User(handle) (*User, error)         // returns a copy
//	HasUser(handle) bool
//	Handles() []string                  // ascending
//	Len() int
//	Clone() *Database                   // deep copy, detached snapshot
//
// Errors:
//
//	ErrNilUser       – AddUser(nil)
//	ErrEmptyHandle   – zero-length handle
//	ErrUserNotFound  – lookup of an absent handle
package core
