package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrop/internal/api"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		if err := setupStderrLogger(cfg); err != nil {
			return err
		}

		st, dbPath, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		h := api.NewHandler(st.EventRepo(), st.HighScoreRepo())
		server := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           api.NewRouter(h),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			slog.Info("starting server", "addr", cfg.Server.Addr, "db", dbPath, "version", buildVersion())
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
			slog.Info("shutting down server")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		if cfg.Database.EventRetention > 0 {
			if err := st.EventRepo().Prune(shutdownCtx, cfg.Database.EventRetention); err != nil {
				slog.Warn("failed to prune game events", "error", err)
			}
		}
		slog.Info("server shutdown completed")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (defaults to the configured server.addr)")
}
