package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrymomot/apkdrop/pkg/logger"
)

// Server runs an http.Server until its context ends or the process is
// asked to stop, then drains in-flight requests.
type Server struct {
	cfg     Config
	log     *slog.Logger
	onStart []func(ctx context.Context, addr string)
	onStop  []func(ctx context.Context)

	mu   sync.Mutex
	srv  *http.Server
	once sync.Once
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// OnStart registers a callback invoked with the bound address once the
// listener is open.
func OnStart(fn func(ctx context.Context, addr string)) Option {
	return func(s *Server) { s.onStart = append(s.onStart, fn) }
}

// OnStop registers a callback invoked after the server has drained.
func OnStop(fn func(ctx context.Context)) Option {
	return func(s *Server) { s.onStop = append(s.onStop, fn) }
}

// New returns a Server for cfg. Zero address and shutdown timeout fall
// back to the HTTP_* defaults.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{cfg: cfg.withDefaults(), log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run listens on the configured address and serves handler.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln, handler)
}

// Serve serves handler on ln until ctx is done or SIGINT/SIGTERM arrives.
// A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		_ = ln.Close()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	s.srv = &http.Server{
		Handler:           handler,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	srv := s.srv
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ln.Addr().String()
	s.log.InfoContext(ctx, "http server listening", slog.String("addr", addr))
	for _, fn := range s.onStart {
		fn(ctx, addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		s.log.InfoContext(context.WithoutCancel(ctx), "http server shutting down")
		if shutdownErr := s.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			return shutdownErr
		}
		err = <-errCh
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return nil
}

// Shutdown drains the server within Config.ShutdownTimeout.
// Calls after the first, or before Serve, return nil.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()

		err = srv.Shutdown(ctx)
		for _, fn := range s.onStop {
			fn(ctx)
		}
		s.log.InfoContext(ctx, "http server stopped")
	})

	if err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
