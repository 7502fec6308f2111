// Package httpapi exposes a workspace server's analysis surface as a
// loopback HTTP JSON API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"go.trai.ch/sema/internal/adapters/daemon"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

const shutdownGrace = 5 * time.Second

// Server serves one workspace's analysis API on a loopback port.
type Server struct {
	root      string
	engine    ports.Engine
	cache     ports.ArtifactCache
	lifecycle *daemon.Lifecycle
	log       ports.Logger
	tracer    ports.Tracer

	requests  atomic.Uint64
	errStreak atomic.Int64
}

// New creates a server for the workspace rooted at root.
func New(
	root string,
	engine ports.Engine,
	cache ports.ArtifactCache,
	lifecycle *daemon.Lifecycle,
	log ports.Logger,
	tracer ports.Tracer,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	return &Server{
		root:      root,
		engine:    engine,
		cache:     cache,
		lifecycle: lifecycle,
		log:       log,
		tracer:    tracer,
	}
}

// Requests returns the number of analysis requests served.
func (s *Server) Requests() uint64 {
	return s.requests.Load()
}

// ErrStreak returns the current run of consecutive request failures.
func (s *Server) ErrStreak() int {
	return int(s.errStreak.Load())
}

// Router builds the route table. Health and shutdown bypass the activity
// middleware so probes never keep an idle server alive.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.handleHealth)
	router.POST("/shutdown", s.handleShutdown)

	api := router.Group("/", s.trackActivity)
	{
		api.POST("/defs", s.handleDefinitions)
		api.POST("/refs", s.handleReferences)
		api.POST("/occurrences", s.handleOccurrences)
		api.POST("/hover", s.handleHover)
		api.POST("/rename", s.handleRename)
		api.POST("/extract-method", s.handleExtractMethod)
		api.POST("/extract-var", s.handleExtractVariable)
		api.POST("/organize-imports", s.handleOrganizeImports)
		api.POST("/move", s.handleMove)
		api.POST("/list", s.handleList)
	}
	return router
}

// trackActivity counts the request, feeds the inactivity timer, and keeps
// the consecutive-failure streak.
func (s *Server) trackActivity(c *gin.Context) {
	s.requests.Add(1)
	s.lifecycle.Touch()
	c.Next()
	if c.Writer.Status() >= http.StatusInternalServerError {
		s.errStreak.Add(1)
		return
	}
	s.errStreak.Store(0)
}

// Bind claims 127.0.0.1:port. The bind is fail-fast so a lost port race
// surfaces immediately instead of as a hung server. Callers register the
// workspace only after Bind succeeds.
func (s *Server) Bind(port int) (net.Listener, error) {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Join(domain.ErrPortBindFailed, zerr.New(fmt.Sprintf("cannot bind %s", addr)), err)
	}
	return listener, nil
}

// Run binds 127.0.0.1:port and serves until the lifecycle shuts down or ctx
// is canceled.
func (s *Server) Run(ctx context.Context, port int) error {
	listener, err := s.Bind(port)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve handles requests on listener until the lifecycle shuts down or ctx
// is canceled. It owns the listener either way.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()
	s.log.Infof("listening on %s", listener.Addr())

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.Wrap(err, "server terminated unexpectedly")
	case <-ctx.Done():
	case <-s.lifecycle.ShutdownChan():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, "graceful shutdown failed")
	}
	return nil
}
