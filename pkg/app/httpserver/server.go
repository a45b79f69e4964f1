// Package httpserver runs an http.Server for the lifetime of a context.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultShutdownTimeout is used when no positive timeout is given.
const DefaultShutdownTimeout = 30 * time.Second

// DrainFunc releases a resource once the server no longer accepts requests.
type DrainFunc func(ctx context.Context) error

// Serve binds srv.Addr and serves until ctx is done or the listener fails.
// Bind errors are returned before anything is served.
func Serve(ctx context.Context, logger *zap.Logger, srv *http.Server, timeout time.Duration, drain ...DrainFunc) error {
	if srv == nil {
		return errors.New("httpserver: nil server")
	}
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}
	return ServeListener(ctx, logger, srv, ln, timeout, drain...)
}

// ServeListener serves srv on ln. Once ctx is done or serving fails it shuts
// srv down within timeout and then runs every drain func in order, even when
// shutdown failed. All errors are joined.
func ServeListener(ctx context.Context, logger *zap.Logger, srv *http.Server, ln net.Listener, timeout time.Duration, drain ...DrainFunc) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("address", ln.Addr().String()))
		serveErr <- srv.Serve(ln)
	}()

	var errs []error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
			errs = append(errs, fmt.Errorf("http server failed: %w", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Info("Shutting down HTTP server", zap.Duration("timeout", timeout))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}

	for i, fn := range drain {
		if err := fn(shutdownCtx); err != nil {
			logger.Error("Drain failed", zap.Int("step", i), zap.Error(err))
			errs = append(errs, fmt.Errorf("drain step %d: %w", i, err))
		}
	}

	if len(errs) == 0 {
		logger.Info("HTTP server stopped")
	}
	return errors.Join(errs...)
}
