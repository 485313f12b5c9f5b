// Package server exposes the voice message polishing pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/valpere/voicemsg/internal/config"
	"github.com/valpere/voicemsg/internal/log"
)

type Server struct {
	cfg      config.ServerConfig
	handlers *Handlers

	router *gin.Engine
	http   *http.Server
}

// New creates a server with its routes registered. It does not listen yet.
func New(cfg config.ServerConfig, p Polisher) *Server {
	s := &Server{
		cfg:      cfg,
		handlers: NewHandlers(p),
	}
	s.setupRouter()
	s.http = &http.Server{
		Addr:     cfg.Addr,
		Handler:  s.router,
		ErrorLog: log.StdErrorLogger(),
	}
	return s
}

func (s *Server) setupRouter() {
	if s.cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()

	s.router.Use(gin.Recovery())
	s.router.Use(log.RequestID())
	s.router.Use(log.GinLogger())

	if s.cfg.Gzip {
		s.router.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	s.router.SetTrustedProxies(nil)

	s.router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "route not found", nil)
	})

	s.router.GET("/", s.handlers.Root)
	s.router.GET("/healthz", s.handlers.Health)
	s.router.GET("/processed_voice_message", s.handlers.ProcessedVoiceMessage)
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Serve accepts connections on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	log.Info().
		Str("addr", ln.Addr().String()).
		Str("env", s.cfg.Env).
		Msg("HTTP server starting")

	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Start listens on the configured address and blocks.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ln)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down server")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	log.Info().Msg("server shutdown complete")
	return nil
}
