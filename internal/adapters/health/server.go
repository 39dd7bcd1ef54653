package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultAddr     = "0.0.0.0:8080"
	aliveMessage    = "BikeBuddy Bot is alive"
	shutdownTimeout = 5 * time.Second
)

// Handler answers hosting-platform liveness probes.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		writeText(w, aliveMessage)
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeText(w, "ok")
	})
	return mux
}

type Server struct {
	addr   string
	server *http.Server
}

func NewServer(addr string) *Server {
	if addr == "" {
		addr = DefaultAddr
	}

	return &Server{
		addr: addr,
		server: &http.Server{
			Handler:           Handler(),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	shutdownDone := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownDone <- s.server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", listener.Addr().String()).Msg("health endpoint listening")
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve health endpoint: %w", err)
	}

	if err := <-shutdownDone; err != nil {
		return fmt.Errorf("shutdown health endpoint: %w", err)
	}
	log.Info().Msg("health endpoint stopped")
	return nil
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
