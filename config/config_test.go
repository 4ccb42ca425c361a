package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twitterverse/config"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
data: data.txt
log:
  level: debug
server:
  addr: ":9090"
query:
  max_frontier: 50
  default_sort: popularity
`))
	require.NoError(t, err)
	assert.Equal(t, "data.txt", cfg.Data)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep their default")
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.True(t, cfg.Server.Metrics)
	assert.Equal(t, 50, cfg.Query.MaxFrontier)
	assert.Equal(t, "popularity", cfg.Query.DefaultSort)
	assert.Equal(t, "short", cfg.Query.DefaultFormat)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"bad level":    "log:\n  level: loud\n",
		"bad sort":     "query:\n  default_sort: age\n",
		"bad format":   "query:\n  default_format: tiny\n",
		"neg frontier": "query:\n  max_frontier: -1\n",
		"bad addr":     "server:\n  addr: nowhere\n",
	} {
		_, err := config.Parse(strings.NewReader(doc))
		assert.ErrorIs(t, err, config.ErrInvalid, name)
	}

	_, err := config.Parse(strings.NewReader("surprise: true\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	p := filepath.Join(t.TempDir(), "tv.yaml")
	require.NoError(t, os.WriteFile(p, []byte("log:\n  format: json\n"), 0o600))
	cfg, err = config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogger(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, config.Log{Level: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, config.Log{Level: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, config.Log{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, config.Log{Level: "info"}.SlogLevel())

	var buf bytes.Buffer
	config.Log{Level: "info", Format: "json"}.NewLogger(&buf).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	config.Log{Level: "warn", Format: "text"}.NewLogger(&buf).Info("quiet")
	assert.Empty(t, buf.String())
}
