// Package server exposes a query.Engine over HTTP.
//
// Routes:
//
//	POST /v1/query                        answer one query
//	GET  /v1/users/:handle                one user record and follower count
//	GET  /v1/users/:handle/followers      followers, ascending
//	GET  /v1/users/:handle/following      followed handles, stored order
//	GET  /healthz                         liveness
//	GET  /metrics                         Prometheus exposition (optional)
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/twitterverse/query"
)

// headerRequestID carries the request ID in both directions.
const headerRequestID = "X-Request-ID"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics serves gatherer on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithDefaults sets the presentation used when a request omits sort_by or format.
func WithDefaults(sortBy, format string) Option {
	return func(s *Server) {
		s.defaultSort = sortBy
		s.defaultFormat = format
	}
}

// Server routes HTTP requests to an Engine.
type Server struct {
	engine        *query.Engine
	log           *slog.Logger
	gatherer      prometheus.Gatherer
	defaultSort   string
	defaultFormat string
	router        *gin.Engine
}

// New builds a Server and its router.
func New(engine *query.Engine, opts ...Option) *Server {
	s := &Server{
		engine:        engine,
		log:           slog.Default(),
		defaultSort:   "username",
		defaultFormat: "short",
	}
	for _, opt := range opts {
		opt(s)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
	v1 := r.Group("/v1")
	v1.POST("/query", s.handleQuery)
	v1.GET("/users/:handle", s.handleUser)
	v1.GET("/users/:handle/followers", s.handleFollowers)
	v1.GET("/users/:handle/following", s.handleFollowing)

	s.router = r

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("server listening", slog.String("addr", addr))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// requestID echoes or assigns X-Request-ID.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// accessLog writes one line per request.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			slog.String("request_id", c.GetString(headerRequestID)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}
