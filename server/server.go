// Package server exposes the allocation engine over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/etnz/fundsplit"
	"github.com/etnz/fundsplit/config"
	"github.com/etnz/fundsplit/validate"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// Server serves compute, validate, advance and impact requests.
// It holds no state between requests.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	now    func() time.Time
}

// New returns a server configured by cfg.
func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg, router: gin.New(), now: time.Now}
	s.router.Use(gin.Logger(), errorHandler())

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := s.router.Group("/api/v1")
	{
		api.POST("/compute", s.compute)
		api.POST("/validate", s.validate)
		api.POST("/advance", s.advance)
		api.POST("/impact", s.impact)
	}
	s.router.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, "NOT_FOUND", errors.New("no route "+c.Request.URL.Path))
	})
	return s
}

// Handler returns the router behind the CORS policy.
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.router)
}

// Run listens on the configured address until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Server.Addr, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() {
		log.Printf("Starting API server on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}

// decodeState reads a state, defaults coming from the configuration.
func (s *Server) decodeState(r io.Reader) (fundsplit.State, error) {
	return s.cfg.DecodeState(r)
}

// computeState runs the engine and reports tier 1 failures as 400.
func (s *Server) computeState(c *gin.Context, r io.Reader) (fundsplit.State, fundsplit.Outputs, bool) {
	state, err := s.decodeState(r)
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return state, fundsplit.Outputs{}, false
	}
	out, err := fundsplit.Compute(state)
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_STATE", err)
		return state, out, false
	}
	return state, out, true
}

// compute handles POST /api/v1/compute
func (s *Server) compute(c *gin.Context) {
	state, out, ok := s.computeState(c, c.Request.Body)
	if !ok {
		return
	}
	issues := validate.Check(state, out)
	c.JSON(http.StatusOK, ComputeResponse{Outputs: &out, Validation: nonNil(issues), Valid: !fundsplit.HasErrors(issues)})
}

// validate handles POST /api/v1/validate
func (s *Server) validate(c *gin.Context) {
	state, out, ok := s.computeState(c, c.Request.Body)
	if !ok {
		return
	}
	issues := validate.Check(state, out)
	c.JSON(http.StatusOK, ComputeResponse{Validation: nonNil(issues), Valid: !fundsplit.HasErrors(issues)})
}

// advance handles POST /api/v1/advance
func (s *Server) advance(c *gin.Context) {
	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	state, out, ok := s.computeState(c, bytes.NewReader(req.State))
	if !ok {
		return
	}
	next := state.Window.Next()
	if req.Next != nil {
		next = *req.Next
	}
	snap := fundsplit.NewSnapshot(state, out, validate.Check(state, out), s.now())
	nextState, err := snap.NextState(next)
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_WINDOW", err)
		return
	}
	c.JSON(http.StatusOK, AdvanceResponse{Snapshot: snap, Next: nextState})
}

// impact handles POST /api/v1/impact
func (s *Server) impact(c *gin.Context) {
	var req ImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	state, err := s.decodeState(bytes.NewReader(req.State))
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	imp, err := fundsplit.ContributionImpact(state, req.Leg)
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_STATE", err)
		return
	}
	c.JSON(http.StatusOK, imp)
}

func nonNil(issues []fundsplit.ValidationError) []fundsplit.ValidationError {
	if issues == nil {
		return []fundsplit.ValidationError{}
	}
	return issues
}
