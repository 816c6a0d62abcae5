package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
)

// listener runs one http.Server with the component lifecycle shared by the
// health and metrics servers.
type listener struct {
	logger     *slog.Logger
	name       string
	port       string
	server     *http.Server
	addr       string
	ready      chan struct{}
	inShutdown atomic.Bool
}

func newListener(logger *slog.Logger, name, port string) *listener {
	return &listener{
		logger: logger.With("component", name),
		name:   name,
		port:   port,
		ready:  make(chan struct{}),
	}
}

// Name returns the name of the server component
func (l *listener) Name() string {
	return l.name
}

// Ping returns nil once the listener accepts connections.
func (l *listener) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ready:
		return nil
	default:
		return fmt.Errorf("%s is not ready", l.name)
	}
}

// Ready returns a channel that is closed once the listener accepts connections.
func (l *listener) Ready() <-chan struct{} {
	return l.ready
}

// serve binds the port and serves handler in a goroutine.
func (l *listener) serve(ctx context.Context, handler http.Handler) error {
	if l.inShutdown.Load() {
		l.logger.InfoContext(ctx, "server is shutting down, skipping start")

		return nil
	}

	addr := ":" + l.port
	l.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{
			Enable: true,
		},
	}

	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s tcp: %w", l.name, err)
	}

	l.addr = ln.Addr().String()
	l.logger.InfoContext(ctx, "server listening", "addr", l.addr)

	go func() {
		close(l.ready)

		if err := l.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.logger.ErrorContext(ctx, "server error", "reason", err)
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the server.
func (l *listener) Shutdown(ctx context.Context) error {
	if !l.inShutdown.CompareAndSwap(false, true) {
		l.logger.ErrorContext(ctx, "server is already shutting down, skipping shutdown")

		return nil
	}

	l.logger.InfoContext(ctx, "shutting down server")

	if l.server == nil {
		return nil
	}

	if err := l.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s shutdown: %w", l.name, err)
	}

	l.logger.InfoContext(ctx, "server closed properly")

	return nil
}
