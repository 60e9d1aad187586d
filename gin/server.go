// Package gin serves the skill over HTTP.
package gin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/cookalong"
	"github.com/fwojciec/cookalong/alexa"
	"github.com/fwojciec/cookalong/skill"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/singleflight"
)

// Routes.
const (
	SkillPath   = "/skill"
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
)

// ShutdownTimeout bounds how long Serve waits for in-flight turns.
const ShutdownTimeout = 10 * time.Second

// Server answers voice requests on POST /skill.
//
// Concurrent deliveries of the same request ID share one turn, so a retried
// request does not move the cursor twice.
type Server struct {
	handler cookalong.TurnHandler
	logger  *slog.Logger
	skillID string

	engine   *gin.Engine
	registry *prometheus.Registry
	metrics  *metrics
	inflight singleflight.Group
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for requests. Defaults to discarding logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithSkillID restricts the server to requests sent to one application.
// An empty ID accepts every application.
func WithSkillID(id string) Option {
	return func(s *Server) {
		s.skillID = id
	}
}

// NewServer creates a Server answering turns with handler.
func NewServer(handler cookalong.TurnHandler, opts ...Option) *Server {
	s := &Server{
		handler:  handler,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.registry)

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestLogger(s.logger))
	s.engine.POST(SkillPath, s.handleSkill)
	s.engine.GET(HealthPath, s.handleHealth)
	s.engine.HEAD(HealthPath, s.handleHealth)
	s.engine.GET(MetricsPath, gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is canceled.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleSkill(c *gin.Context) {
	req, err := alexa.DecodeRequest(c.Request.Body)
	if err != nil {
		s.metrics.rejected.WithLabelValues(cookalong.ErrorCode(err)).Inc()
		Error(c, err)
		return
	}

	if s.skillID != "" && req.ApplicationID != s.skillID {
		err := cookalong.Errorf(cookalong.EUNAUTHORIZED, "unknown application %q", req.ApplicationID)
		s.metrics.rejected.WithLabelValues(cookalong.EUNAUTHORIZED).Inc()
		Error(c, err)
		return
	}

	resp, err := s.turn(c.Request.Context(), req)
	if err != nil {
		s.logger.Error("turn failed", "request", req.RequestID, "user", req.UserID, "err", err)
		s.metrics.turns.WithLabelValues(string(req.Type), req.IntentName(), "failure").Inc()
		resp = skill.FailureResponse()
		resp.Attributes = req.Attributes
	} else {
		s.metrics.turns.WithLabelValues(string(req.Type), req.IntentName(), "ok").Inc()
	}

	c.PureJSON(http.StatusOK, alexa.NewResponseEnvelope(resp))
}

// turn runs the request through the handler. Concurrent deliveries of the
// same request from the same user share one turn. Requests without an ID
// are never collapsed.
func (s *Server) turn(ctx context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error) {
	begin := time.Now()
	defer func() {
		s.metrics.duration.Observe(time.Since(begin).Seconds())
	}()

	if req.RequestID == "" {
		return s.handler.Handle(ctx, req)
	}

	key := req.UserID + "\x00" + req.RequestID
	v, err, shared := s.inflight.Do(key, func() (any, error) {
		return s.handler.Handle(ctx, req)
	})
	if shared {
		s.metrics.duplicates.Inc()
	}
	if err != nil {
		return nil, err
	}

	// Each caller gets its own copy of a shared response.
	resp := *v.(*cookalong.SpeechResponse)
	return &resp, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
