package present_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twitterverse/core"
	"github.com/katalvlaran/twitterverse/present"
)

func TestList(t *testing.T) {
	assert.Equal(t, "[]", present.List(nil))
	assert.Equal(t, "['a']", present.List([]string{"a"}))
	assert.Equal(t, "['a', 'b', 'c']", present.List([]string{"a", "b", "c"}))
	// repeated trailing element still closes once
	assert.Equal(t, "['a', 'b', 'a']", present.List([]string{"a", "b", "a"}))
}

func TestLongUser(t *testing.T) {
	db := core.NewDatabase(core.WithUsers(
		&core.User{Handle: "a", Name: "Zed"},
		&core.User{
			Handle:    "z",
			Name:      "Zed",
			Location:  "Toronto, Ontario",
			Website:   "www.Zed.com",
			Bio:       "I love to meet new people!",
			Following: []string{"a", "b"},
		},
	))

	got, err := present.LongUser(db, "a")
	require.NoError(t, err)
	assert.Equal(t, "----------\na\nname: Zed\nlocation: \nwebsite: \nbio:\n\nfollowing: []\n", got)

	got, err = present.LongUser(db, "z")
	require.NoError(t, err)
	assert.Equal(t, "----------\nz\nname: Zed\nlocation: Toronto, Ontario\nwebsite: www.Zed.com\n"+
		"bio:\nI love to meet new people!\nfollowing: ['a', 'b']\n", got)

	_, err = present.LongUser(db, "ghost")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestLongForm(t *testing.T) {
	db := core.NewDatabase(core.WithUsers(
		&core.User{Handle: "a", Name: "Zed"},
		&core.User{Handle: "b", Name: "Lee", Bio: "line one\nline two"},
	))

	got, err := present.LongForm(db, nil)
	require.NoError(t, err)
	assert.Equal(t, "----------\n----------\n", got)

	got, err = present.LongForm(db, []string{"b", "a"})
	require.NoError(t, err)
	want := "----------\nb\nname: Lee\nlocation: \nwebsite: \nbio:\nline one\nline two\nfollowing: []\n" +
		"----------\na\nname: Zed\nlocation: \nwebsite: \nbio:\n\nfollowing: []\n" +
		"----------\n"
	assert.Equal(t, want, got)
}

func TestRender(t *testing.T) {
	db := core.NewDatabase(core.WithUsers(&core.User{Handle: "a"}))

	got, err := present.Render(db, []string{"a"}, present.Short)
	require.NoError(t, err)
	assert.Equal(t, "['a']", got)

	got, err = present.Render(db, nil, present.Short)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	// short never looks users up
	handles := []string{"a", "ghost"}
	got, err = present.Render(db, handles, present.Short)
	require.NoError(t, err)
	assert.Equal(t, present.List(handles), got)

	_, err = present.Render(db, nil, present.Format(7))
	assert.ErrorIs(t, err, present.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := present.ParseFormat("short")
	require.NoError(t, err)
	assert.Equal(t, present.Short, f)
	f, err = present.ParseFormat("long")
	require.NoError(t, err)
	assert.Equal(t, present.Long, f)
	_, err = present.ParseFormat("medium")
	assert.ErrorIs(t, err, present.ErrUnknownFormat)

	var g present.Format
	require.NoError(t, g.UnmarshalText([]byte("long")))
	b, err := g.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "long", string(b))
	_, err = present.Format(0).MarshalText()
	assert.ErrorIs(t, err, present.ErrUnknownFormat)
}
