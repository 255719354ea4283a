package server

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vipcxj/rangealg/internal/batch"
	"github.com/vipcxj/rangealg/internal/calc"
	"github.com/vipcxj/rangealg/internal/interval"
	"github.com/vipcxj/rangealg/internal/logging"
	"github.com/vipcxj/rangealg/internal/notation"
)

const shutdownTimeout = 5 * time.Second

// DefaultMaxBodyBytes caps the size of request bodies.
const DefaultMaxBodyBytes = 1 << 20

// Server exposes calc.Eval and batch runs over HTTP.
type Server struct {
	engine   *gin.Engine
	registry *prometheus.Registry
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
	log      *zap.SugaredLogger
	maxBody  int64
}

type errorResponse struct {
	Error string `json:"error"`
}

// New builds a server with its own metrics registry, so several servers can live in one process.
func New() *Server {
	s := &Server{
		engine:   gin.New(),
		registry: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rangealg",
			Name:      "operations_total",
			Help:      "Number of evaluated range operations by outcome.",
		}, []string{"op", "kind", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rangealg",
			Name:      "operation_duration_seconds",
			Help:      "Time spent evaluating range operations.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"op"}),
		log:     logging.GetLogger("server"),
		maxBody: DefaultMaxBodyBytes,
	}
	s.registry.MustRegister(s.ops, s.duration)

	s.engine.Use(gin.Recovery(), s.accessLog())
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1 := s.engine.Group("/v1", s.limitBody())
	v1.GET("/ops/:op", s.handleOp)
	v1.POST("/eval", s.handleEval)
	v1.POST("/batch", s.handleBatch)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	return s
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}
	errc := make(chan error, 1)
	go func() {
		s.log.Infow("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	}
}

// handleOp serves GET /v1/ops/:op?kind=int&arg=[1..5]&arg=3&step=1&max=10.
func (s *Server) handleOp(c *gin.Context) {
	op, err := calc.OpString(c.Param("op"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	d, err := queryDefaults(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.eval(c, calc.Request{Kind: d.Kind, Op: op, Args: c.QueryArray("arg"), Step: c.Query("step"), Max: d.Max})
}

// queryDefaults reads the optional kind and max query parameters.
func queryDefaults(c *gin.Context) (batch.Defaults, error) {
	var (
		d   batch.Defaults
		err error
	)
	if k := c.Query("kind"); k != "" {
		if d.Kind, err = notation.ValueKindString(k); err != nil {
			return d, err
		}
	}
	if m := c.Query("max"); m != "" {
		if d.Max, err = strconv.Atoi(m); err != nil {
			return d, errors.Newf("invalid max %q", m)
		}
	}
	return d, nil
}

// handleEval serves POST /v1/eval with a JSON encoded calc.Request.
func (s *Server) handleEval(c *gin.Context) {
	var req calc.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(bodyStatus(err), errorResponse{Error: err.Error()})
		return
	}
	s.eval(c, req)
}

// handleBatch serves POST /v1/batch?kind=int&max=10 with a YAML batch document as body. The query
// parameters apply to steps whose file sets no kind or max.
func (s *Server) handleBatch(c *gin.Context) {
	d, err := queryDefaults(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(bodyStatus(err), errorResponse{Error: err.Error()})
		return
	}
	f, err := batch.Parse(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	report := f.Run(d)
	for _, r := range report.Results {
		status := "ok"
		if r.Error != "" {
			status = "error"
		}
		s.ops.WithLabelValues(r.Op.String(), r.Kind.String(), status).Inc()
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) eval(c *gin.Context, req calc.Request) {
	start := time.Now()
	res, err := calc.Eval(req)
	s.duration.WithLabelValues(req.Op.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		s.ops.WithLabelValues(req.Op.String(), req.Kind.String(), "error").Inc()
		c.JSON(statusOf(err), errorResponse{Error: err.Error()})
		return
	}
	s.ops.WithLabelValues(req.Op.String(), req.Kind.String(), "ok").Inc()
	c.JSON(http.StatusOK, res)
}

// statusOf maps well formed but invalid input to 422 and everything else to 400.
func statusOf(err error) int {
	switch {
	case errors.Is(err, interval.ErrInvalidRange),
		errors.Is(err, interval.ErrArgumentOutOfRange),
		errors.Is(err, interval.ErrGeneratorOrder):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// bodyStatus is 413 when err comes from a body over the size limit and 400 otherwise.
func bodyStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func (s *Server) limitBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debugw("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start))
	}
}
