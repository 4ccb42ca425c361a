// Package config loads the twitterverse CLI and server configuration from YAML.
//
// Example:
//
//	data: testdata/data.txt
//	log:
//	  level: info
//	  format: text
//	server:
//	  addr: ":8080"
//	  metrics: true
//	query:
//	  max_frontier: 10000
//	  default_sort: username
//	  default_format: short
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MaxFileSize caps the size of a config file.
const MaxFileSize = 1024 * 1024

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Log configures the structured logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Server configures the HTTP transport.
type Server struct {
	Addr    string `yaml:"addr" validate:"required,hostname_port"`
	Metrics bool   `yaml:"metrics"`
}

// Query holds defaults applied to every query.
type Query struct {
	MaxFrontier   int    `yaml:"max_frontier" validate:"gte=0"`
	DefaultSort   string `yaml:"default_sort" validate:"oneof=username name popularity"`
	DefaultFormat string `yaml:"default_format" validate:"oneof=short long"`
}

// Config is the root of the YAML document.
type Config struct {
	Data   string `yaml:"data"`
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
	Query  Query  `yaml:"query"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: "text"},
		Server: Server{Addr: "127.0.0.1:8080", Metrics: true},
		Query:  Query{MaxFrontier: 0, DefaultSort: "username", DefaultFormat: "short"},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Parse decodes YAML from r over Default() and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return cfg, fmt.Errorf("config: read: %w", err)
	}
	if len(data) > MaxFileSize {
		return cfg, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalid, MaxFileSize)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, cfg.Validate()
}

// Load reads the file at path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// SlogLevel maps Log.Level to a slog.Level.
func (l Log) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text or JSON slog.Logger writing to w.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
