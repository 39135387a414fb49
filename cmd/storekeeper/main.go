// Package main runs the interactive inventory shell and, when enabled, the read-only report and pprof servers.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/storekeeper/internal/config"
	"github.com/abgdnv/storekeeper/internal/inventory/handler"
	"github.com/abgdnv/storekeeper/internal/inventory/service"
	"github.com/abgdnv/storekeeper/internal/inventory/store"
	"github.com/abgdnv/storekeeper/internal/shell"
	"github.com/abgdnv/storekeeper/pkg/bootstrap"
	"github.com/abgdnv/storekeeper/pkg/server"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run wires the store, service and shell, and runs them until the user quits or a signal arrives.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// stdout belongs to the menu
	logger := bootstrap.NewLogger(cfg.Log.Level, os.Stderr)
	slog.SetDefault(logger)
	logger.Debug("Configuration loaded", "config", cfg.String())

	svc := service.NewService(store.NewInMemoryStore(), logger)

	g, gCtx := errgroup.WithContext(ctx)
	shellCtx, shellDone := context.WithCancel(gCtx)
	defer shellDone()

	g.Go(func() error {
		// the shell finishing ends the process, so cancel the group for the other members
		defer shellDone()
		sh := shell.New(svc, cfg.Auth.Secret, os.Stdin, os.Stdout, logger)
		return sh.Run(shellCtx)
	})

	if cfg.Reports.Enabled {
		router := server.NewChiRouter(logger)
		handler.NewHandler(svc, logger).RegisterRoutes(router)
		httpServer := server.NewHTTPServer(cfg.HTTPServer, router)

		g.Go(func() error {
			logger.Info("Report server listening", slog.String("addr", httpServer.Addr))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("report server failed: %w", err)
			}
			return nil
		})
		// gracefully shutdown the report server once the shell is gone
		g.Go(func() error {
			<-shellCtx.Done()
			logger.Info("Shutting down report server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
	}

	if cfg.PProf.Enabled {
		pprofServer := server.NewPProfServer(cfg.PProf)
		g.Go(func() error {
			logger.Info("Pprof server listening", slog.String("addr", pprofServer.Addr))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("pprof server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-shellCtx.Done()
			logger.Info("Shutting down pprof server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
			defer cancel()
			return pprofServer.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}
