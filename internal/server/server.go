// Package server exposes the ISA catalogs over HTTP for harnesses that
// fetch payloads remotely.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/fxnlabs/kfd-isa/internal/config"
	"github.com/fxnlabs/kfd-isa/internal/isa"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Module wires the payload server. It expects *config.Config and
// *zap.Logger to be supplied.
var Module = fx.Options(
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	}),
	fx.Provide(
		NewCatalogs,
		NewHandler,
		NewHTTPServer,
	),
	fx.Invoke(func(*http.Server) {}),
)

// NewCatalogs builds one catalog per supported architecture with the
// configured options.
func NewCatalogs(cfg *config.Config) ([]isa.KernelSource, error) {
	return isa.Catalogs(isa.WithEmptyGEMMKernels(cfg.Catalog.EmptyGEMMKernels))
}

// NewHTTPServer binds on start and shuts down gracefully on stop.
func NewHTTPServer(lc fx.Lifecycle, cfg *config.Config, h *Handler, log *zap.Logger) *http.Server {
	srv := &http.Server{
		Addr:        cfg.Server.ListenAddress,
		Handler:     h.Routes(),
		ReadTimeout: cfg.Server.ReadTimeout,
	}
	log = log.Named("server")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting payload server", zap.String("address", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("payload server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cfg.Server.ShutdownTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
				defer cancel()
			}
			log.Info("Stopping payload server")
			return srv.Shutdown(ctx)
		},
	})
	return srv
}
