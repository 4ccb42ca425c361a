package query_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twitterverse/core"
	"github.com/katalvlaran/twitterverse/filter"
	"github.com/katalvlaran/twitterverse/order"
	"github.com/katalvlaran/twitterverse/present"
	"github.com/katalvlaran/twitterverse/query"
	"github.com/katalvlaran/twitterverse/traverse"
)

// triangle is a ↔ b, c → b.
func triangle() *core.Database {
	return core.NewDatabase(core.WithUsers(
		&core.User{Handle: "a", Name: "Zed", Following: []string{"b"}},
		&core.User{Handle: "b", Name: "Lee", Following: []string{"a"}},
		&core.User{Handle: "c", Name: "anna", Following: []string{"b"}},
	))
}

func spec(seed string, ops []traverse.Operation, f *filter.Spec, key order.SortKey) query.Spec {
	return query.Spec{
		Search:  query.SearchSpec{Seed: seed, Operations: ops},
		Filter:  f,
		Present: query.PresentSpec{SortBy: key, Format: present.Short},
	}
}

func TestAnswer_SeedOnly(t *testing.T) {
	got, err := query.Answer(triangle(), spec("a", nil, nil, order.Username))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
}

func TestAnswer_FiltersOnSeed(t *testing.T) {
	f := filter.NewSpec(
		filter.Pair{Kind: filter.NameIncludes, Arg: "e"},
		filter.Pair{Kind: filter.Following, Arg: "b"},
	)
	// "Zed" contains an e, and a follows b
	got, err := query.Answer(triangle(), spec("a", nil, f, order.Username))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)

	f = filter.NewSpec(filter.Pair{Kind: filter.NameIncludes, Arg: "q"})
	got, err = query.Answer(triangle(), spec("a", nil, f, order.Username))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnswer_FollowersSortedByPopularity(t *testing.T) {
	// followers of b are a and c; a has 1 follower, c has 0
	got, err := query.Answer(triangle(), spec("b", []traverse.Operation{traverse.Followers}, nil, order.Popularity))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got)

	// by name: "Zed" < "anna" in byte order
	got, err = query.Answer(triangle(), spec("b", []traverse.Operation{traverse.Followers}, nil, order.Name))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestAnswer_TwoHops(t *testing.T) {
	ops := []traverse.Operation{traverse.Followers, traverse.Following}
	got, err := query.Answer(triangle(), spec("b", ops, nil, order.Username))
	require.NoError(t, err)
	// a → [b], c → [b]
	assert.Equal(t, []string{"b"}, got)
}

func TestAnswer_LookupErrorPropagates(t *testing.T) {
	db := core.NewDatabase(core.WithUsers(&core.User{Handle: "x", Following: []string{"ghost"}}))
	f := filter.NewSpec(filter.Pair{Kind: filter.NameIncludes, Arg: "g"})
	_, err := query.Answer(db, spec("x", []traverse.Operation{traverse.Following}, f, order.Username))
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestAnswer_SortByNameWithMissingRecord(t *testing.T) {
	db := core.NewDatabase(core.WithUsers(
		&core.User{Handle: "a", Name: "Zed", Following: []string{"ghost", "b"}},
		&core.User{Handle: "b", Name: "Lee"},
	))
	got, err := query.Answer(db, spec("a", []traverse.Operation{traverse.Following}, nil, order.Name))
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost", "b"}, got)
}

func TestAnswer_Malformed(t *testing.T) {
	db := triangle()
	_, err := query.Answer(db, spec("a", nil, nil, order.SortKey(0)))
	assert.ErrorIs(t, err, query.ErrMalformedSpec)

	s := spec("a", []traverse.Operation{traverse.Operation(7)}, nil, order.Username)
	_, err = query.Answer(db, s)
	assert.ErrorIs(t, err, query.ErrMalformedSpec)

	s = spec("a", nil, filter.NewSpec(filter.Pair{Kind: filter.Kind(9), Arg: "x"}), order.Username)
	_, err = query.Answer(db, s)
	assert.ErrorIs(t, err, query.ErrMalformedSpec)

	s = spec("a", nil, nil, order.Username)
	s.Present.Format = 0
	_, err = query.Answer(db, s)
	assert.ErrorIs(t, err, query.ErrMalformedSpec)
}

func TestRender(t *testing.T) {
	s := spec("b", []traverse.Operation{traverse.Followers}, nil, order.Username)
	got, err := query.Render(triangle(), s)
	require.NoError(t, err)
	assert.Equal(t, "['a', 'c']", got)

	s.Filter = filter.NewSpec(filter.Pair{Kind: filter.LocationIncludes, Arg: "mars"})
	s.Present.Format = present.Long
	got, err = query.Render(triangle(), s)
	require.NoError(t, err)
	assert.Equal(t, "----------\n----------\n", got)
}

func TestEngine_LogsAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	e := query.NewEngine(triangle(),
		query.WithLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		query.WithRegisterer(reg),
	)

	got, err := e.Answer(context.Background(), spec("b", []traverse.Operation{traverse.Followers}, nil, order.Username))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got)

	_, err = e.Answer(context.Background(), spec("b", nil, nil, order.SortKey(0)))
	require.ErrorIs(t, err, query.ErrMalformedSpec)

	assert.Contains(t, buf.String(), `"msg":"search step"`)
	assert.Contains(t, buf.String(), `"msg":"query answered"`)
	assert.Contains(t, buf.String(), `"msg":"query failed"`)

	n, err := testutil.GatherAndCount(reg, "twitterverse_queries_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// a second engine on the same registry shares collectors
	e2 := query.NewEngine(triangle(), query.WithRegisterer(reg))
	_, err = e2.Answer(context.Background(), spec("a", nil, nil, order.Username))
	require.NoError(t, err)
}

func TestEngine_MaxFrontierAndCancel(t *testing.T) {
	e := query.NewEngine(triangle(), query.WithMaxFrontier(1))
	_, err := e.Answer(context.Background(), spec("b", []traverse.Operation{traverse.Followers}, nil, order.Username))
	assert.ErrorIs(t, err, traverse.ErrFrontierTooLarge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = query.NewEngine(triangle()).Answer(ctx, spec("b", []traverse.Operation{traverse.Followers}, nil, order.Username))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Render(t *testing.T) {
	e := query.NewEngine(triangle())
	s := spec("a", nil, nil, order.Username)
	s.Present.Format = present.Long
	got, err := e.Render(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "----------\na\nname: Zed\nlocation: \nwebsite: \nbio:\n\nfollowing: ['b']\n----------\n", got)
	assert.Equal(t, 3, e.Database().Len())
}
