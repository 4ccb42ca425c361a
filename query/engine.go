package query

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/twitterverse/core"
	"github.com/katalvlaran/twitterverse/present"
	"github.com/katalvlaran/twitterverse/traverse"
)

// Query outcome labels.
const (
	statusOK        = "ok"
	statusMalformed = "malformed"
	statusNotFound  = "not_found"
	statusError     = "error"
)

// metrics groups the engine's collectors.
type metrics struct {
	queries  *prometheus.CounterVec
	duration prometheus.Histogram
	results  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "twitterverse_queries_total",
			Help: "Total queries answered, by outcome",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "twitterverse_query_duration_seconds",
			Help:    "Wall time to answer one query",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "twitterverse_query_results",
			Help:    "Number of handles returned per successful query",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 500, 1000},
		}),
	}
	m.queries = register(reg, m.queries)
	m.duration = register(reg, m.duration)
	m.results = register(reg, m.results)

	return m
}

// register adds c to reg, reusing an identical collector that is already
// registered so several engines can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}

	return c
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger. Nil is ignored.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRegisterer sets where metrics are registered. Nil is ignored.
func WithRegisterer(reg prometheus.Registerer) EngineOption {
	return func(e *Engine) {
		if reg != nil {
			e.reg = reg
		}
	}
}

// WithMaxFrontier bounds every search; see traverse.WithMaxFrontier.
func WithMaxFrontier(n int) EngineOption {
	return func(e *Engine) { e.maxFrontier = n }
}

// Engine answers queries against one database, logging and measuring each.
// An Engine never mutates its database and is safe for concurrent use.
type Engine struct {
	db          *core.Database
	log         *slog.Logger
	reg         prometheus.Registerer
	m           *metrics
	maxFrontier int
}

// NewEngine creates an Engine over db. By default it logs nowhere and
// registers metrics in a private registry.
func NewEngine(db *core.Database, opts ...EngineOption) *Engine {
	e := &Engine{
		db:  db,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		reg: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.m = newMetrics(e.reg)

	return e
}

// Database returns the database the engine reads.
func (e *Engine) Database() *core.Database { return e.db }

// Answer runs spec and returns the ranked handles.
func (e *Engine) Answer(ctx context.Context, spec Spec) ([]string, error) {
	start := time.Now()
	log := e.log.With(
		slog.String("seed", spec.Search.Seed),
		slog.Int("operations", len(spec.Search.Operations)),
		slog.Int("filters", spec.Filter.Len()),
		slog.String("sort_by", spec.Present.SortBy.String()),
	)

	handles, err := Answer(e.db, spec,
		traverse.WithContext(ctx),
		traverse.WithMaxFrontier(e.maxFrontier),
		traverse.WithOnStep(func(step int, op traverse.Operation, frontier []string) {
			log.DebugContext(ctx, "search step",
				slog.Int("step", step),
				slog.String("op", op.String()),
				slog.Int("frontier", len(frontier)))
		}),
	)
	elapsed := time.Since(start)
	e.m.duration.Observe(elapsed.Seconds())

	status := classify(err)
	e.m.queries.WithLabelValues(status).Inc()
	if err != nil {
		log.WarnContext(ctx, "query failed",
			slog.String("status", status),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err))
		return nil, err
	}
	e.m.results.Observe(float64(len(handles)))
	log.InfoContext(ctx, "query answered",
		slog.Int("results", len(handles)),
		slog.Duration("elapsed", elapsed))

	return handles, nil
}

// Render answers spec and formats the result per spec.Present.Format.
func (e *Engine) Render(ctx context.Context, spec Spec) (string, error) {
	handles, err := e.Answer(ctx, spec)
	if err != nil {
		return "", err
	}

	return present.Render(e.db, handles, spec.Present.Format)
}

// classify maps an error to its metrics label.
func classify(err error) string {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, ErrMalformedSpec):
		return statusMalformed
	case errors.Is(err, core.ErrUserNotFound):
		return statusNotFound
	default:
		return statusError
	}
}
