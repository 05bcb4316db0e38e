package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/kaaryaa/identity-engine/internal/common"
	"github.com/kaaryaa/identity-engine/internal/docintel"
	"github.com/kaaryaa/identity-engine/internal/extract"
	"github.com/kaaryaa/identity-engine/internal/server"
)

func newServeCmd(logger *slog.Logger) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the identity extraction HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := common.LoadConfig()
			if addr != "" {
				cfg.Server.HTTPAddr = addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			analyzer := docintel.NewClient(cfg.DocIntel, nil, logger)
			pipeline := extract.NewPipeline(cfg.Pipeline, logger)
			svc := server.NewServer(cfg.Server, analyzer, pipeline, logger)

			httpServer := &http.Server{
				Addr:              cfg.Server.HTTPAddr,
				Handler:           svc.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
