package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/middleware/security"
	"fintrack/internal/middleware/trace"
)

// TransactionAPI is the service surface the handlers depend on.
type TransactionAPI interface {
	CreateTransaction(ctx context.Context, n core.NewTransaction) (core.Transaction, error)
	DeleteTransaction(ctx context.Context, id string)

	Location() *time.Location
	Now() time.Time

	All() []core.Transaction
	ListByDate(date time.Time) []core.Transaction
	ListByMonth(month time.Time) []core.Transaction
	ListRecent(limit int) []core.Transaction
	MonthSummary(ref time.Time) core.Summary
	DatesWithActivity(month time.Time) map[string]core.DayActivity
	DaySummary(date time.Time) core.DaySummary
	MonthlyTrend(ref time.Time, months int) []core.MonthTotals
}

// Server wraps http.Server with the gin engine serving the JSON API.
type Server struct {
	http.Server
	engine *gin.Engine
	trace  *trace.Middleware

	shutdownOnce sync.Once
}

type options struct {
	recentLimit int
	headers     security.HeadersConfig
}

// Option configures a Server.
type Option func(*options)

// WithRecentLimit sets the page size used when /api/transactions/recent is
// called without a limit.
func WithRecentLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.recentLimit = n
		}
	}
}

// WithHeaders overrides the security headers applied to every response.
func WithHeaders(cfg security.HeadersConfig) Option {
	return func(o *options) {
		o.headers = cfg
	}
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, api TransactionAPI, logger *applog.Logger, opts ...Option) *Server {
	o := options{
		recentLimit: defaultRecentLimit,
		headers:     security.DefaultHeadersConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}

	tm := trace.NewMiddleware()
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		applog.Middleware(logger.WithComponent(applog.ComponentHTTP)),
		tm.Handler(),
		security.Headers(o.headers),
	)

	h := NewHandler(api, o.recentLimit)
	h.Register(engine)

	return &Server{
		Server: http.Server{
			Addr:           addr,
			Handler:        engine,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 16, // 64KB
		},
		engine: engine,
		trace:  tm,
	}
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Metrics returns the request counters collected by the trace middleware.
func (s *Server) Metrics() trace.Metrics {
	return s.trace.GetMetrics()
}

// Shutdown gracefully shuts down the server. Only the first call has effect.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		err = s.Server.Shutdown(ctx)
	})
	return err
}
