package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twitterverse/core"
)

// newTriangle builds a → b, b → a, c → b.
func newTriangle(t *testing.T) *core.Database {
	t.Helper()
	db := core.NewDatabase()
	require.NoError(t, db.AddUser(&core.User{Handle: "a", Name: "Zed", Following: []string{"b"}}))
	require.NoError(t, db.AddUser(&core.User{Handle: "b", Name: "Lee", Following: []string{"a"}}))
	require.NoError(t, db.AddUser(&core.User{Handle: "c", Name: "anna", Following: []string{"b"}}))

	return db
}

func TestAddUser_Errors(t *testing.T) {
	db := core.NewDatabase()
	require.ErrorIs(t, db.AddUser(nil), core.ErrNilUser)
	require.ErrorIs(t, db.AddUser(&core.User{}), core.ErrEmptyHandle)
	require.Zero(t, db.Len())
}

func TestWithUsers_RecordsFirstError(t *testing.T) {
	db := core.NewDatabase(core.WithUsers(nil, &core.User{Handle: "a"}, &core.User{}))
	require.ErrorIs(t, db.Err(), core.ErrNilUser)
	assert.True(t, db.HasUser("a"))
	assert.Equal(t, 1, db.Len())

	db = core.NewDatabase(core.WithUsers(&core.User{Handle: "a"}, &core.User{Name: "nobody"}))
	assert.ErrorIs(t, db.Err(), core.ErrEmptyHandle)

	assert.NoError(t, core.NewDatabase(core.WithUsers(&core.User{Handle: "a"})).Err())
}

func TestAddUser_ReplacesAndReindexes(t *testing.T) {
	db := newTriangle(t)
	require.Equal(t, []string{"a", "c"}, db.Followers("b"))

	// c now follows a instead of b.
	require.NoError(t, db.AddUser(&core.User{Handle: "c", Name: "anna", Following: []string{"a"}}))
	assert.Equal(t, []string{"a"}, db.Followers("b"))
	assert.Equal(t, []string{"b", "c"}, db.Followers("a"))
	assert.Equal(t, 3, db.Len())
}

func TestAddUser_StoresCopy(t *testing.T) {
	u := &core.User{Handle: "a", Following: []string{"b"}}
	db := core.NewDatabase(core.WithUsers(u))
	u.Following[0] = "zzz"

	got, err := db.Following("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got)
}

func TestUser(t *testing.T) {
	db := newTriangle(t)

	u, err := db.User("a")
	require.NoError(t, err)
	assert.Equal(t, "Zed", u.Name)

	// mutating the copy does not leak back
	u.Following = append(u.Following, "c")
	again, _ := db.User("a")
	assert.Equal(t, []string{"b"}, again.Following)

	_, err = db.User("missing")
	require.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestHasUserAndHandles(t *testing.T) {
	db := core.NewDatabase(core.WithUsers(
		&core.User{Handle: "m"},
		&core.User{Handle: "b"},
		&core.User{Handle: "x"},
		nil,
	))
	assert.True(t, db.HasUser("m"))
	assert.False(t, db.HasUser(""))
	assert.False(t, db.HasUser("q"))
	assert.Equal(t, []string{"b", "m", "x"}, db.Handles())
}

func TestFollowing(t *testing.T) {
	db := newTriangle(t)

	got, err := db.Following("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got)

	_, err = db.Following("nobody")
	require.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestFollowing_EmptyListIsNonNil(t *testing.T) {
	db := core.NewDatabase(core.WithUsers(&core.User{Handle: "solo"}))
	got, err := db.Following("solo")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFollowers(t *testing.T) {
	db := newTriangle(t)
	assert.Equal(t, []string{"a", "c"}, db.Followers("b"))
	assert.Equal(t, []string{"b"}, db.Followers("a"))
	assert.Empty(t, db.Followers("c"))

	// no record required for the followee
	require.NoError(t, db.AddUser(&core.User{Handle: "d", Following: []string{"ghost"}}))
	assert.Equal(t, []string{"d"}, db.Followers("ghost"))
	assert.Equal(t, 1, db.FollowerCount("ghost"))
}

func TestFollowerCount(t *testing.T) {
	db := newTriangle(t)
	assert.Equal(t, 2, db.FollowerCount("b"))
	assert.Equal(t, 1, db.FollowerCount("a"))
	assert.Equal(t, 0, db.FollowerCount("c"))
	assert.Equal(t, 0, db.FollowerCount("nobody"))
}

func TestClone_IsDetached(t *testing.T) {
	db := newTriangle(t)
	snap := db.Clone()

	require.NoError(t, db.AddUser(&core.User{Handle: "d", Following: []string{"b"}}))

	assert.Equal(t, 3, snap.Len())
	assert.Equal(t, []string{"a", "c"}, snap.Followers("b"))
	assert.Equal(t, []string{"a", "c", "d"}, db.Followers("b"))
}
