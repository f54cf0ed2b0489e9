package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Cenagaurav77/Present-App/internal/adapters/httpapi"
	"github.com/Cenagaurav77/Present-App/internal/application"
	"github.com/Cenagaurav77/Present-App/internal/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the presentation API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			listenAddr := addr
			if listenAddr == "" {
				listenAddr = app.cfg.Server.Addr
			}

			repo, err := app.openStore()
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := repo.Close(); closeErr != nil {
					app.logger.Warn("close store", zap.Error(closeErr))
					err = errors.Join(err, fmt.Errorf("close store: %w", closeErr))
				}
			}()

			ln, err := net.Listen("tcp", listenAddr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", listenAddr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, app, repo, ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: server.addr)")

	return cmd
}

func serve(ctx context.Context, app *app, repo storeRepository, ln net.Listener) error {
	server := httpapi.NewServer(application.NewService(repo, ports.SystemClock{}), httpapi.ServerConfig{
		AllowedOrigin:    app.cfg.Server.AllowedOrigin,
		AllowCredentials: app.cfg.Server.AllowCredentials,
		Logger:           app.logger.Named("httpapi"),
		StoreState:       func() string { return repo.ConnectionState().String() },
	})

	return server.Serve(ctx, ln)
}
