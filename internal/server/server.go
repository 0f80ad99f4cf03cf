package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"controlling_window/internal/config"
)

const maxHeaderBytes = 1 << 20 // 1 MB

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	cfg        config.ServerConfig
	httpServer *http.Server
}

// New returns a Server tuned by cfg timeouts.
func New(cfg config.ServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}
}

// normalizeAddr accepts "8080" or ":8080".
func normalizeAddr(port string) string {
	if port == "" || strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// Run blocks serving handler on port. A graceful Shutdown is not an error.
func (s *Server) Run(port string, handler http.Handler) error {
	s.httpServer = s.newHTTPServer(normalizeAddr(port), handler)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
