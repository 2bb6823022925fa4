package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"rating-service/pkg/logx"
)

// HTTPServer модуль, ответственный за запуск и остановку HTTP-сервера
// (graceful shutdown).
type HTTPServer struct {
	ShutdownTimeout time.Duration
}

// Run binds the listener before returning, so the server accepts connections
// once Run succeeds. It returns the bound address.
func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	httpServer *http.Server,
) (net.Addr, error) {
	addr := httpServer.Addr
	if addr == "" {
		addr = ":http"
	}

	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr) //nolint:exhaustruct
	if err != nil {
		return nil, fmt.Errorf("net.Listen: %w", err)
	}

	g.Go(func() error {
		go func() {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout) //nolint:govet
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				logger(ctx).Error("server.Shutdown", logx.Error(err))
			}
		}()

		logger(ctx).Info("http server started", slog.String("address", listener.Addr().String()))

		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.Serve: %w", err)
		}

		logger(ctx).Info("http server stopped", slog.String("address", listener.Addr().String()))

		return nil
	})

	return listener.Addr(), nil
}
