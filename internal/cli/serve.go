package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedback_app/internal/config"
	"feedback_app/internal/handlers"
	"feedback_app/internal/logger"
	"feedback_app/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const (
	sweepInterval   = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func newServeCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), state.cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := initApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	h := handlers.NewHandler(a.services, log, handlers.Options{
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.Secure,
	})

	// context for background goroutines
	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.services.Sweeper.Run(bgCtx, sweepInterval)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	srv := server.New(port, h.InitRoutes(), server.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	})
	serverErr := runHTTPServer(srv, port, log)

	return waitForShutdown(cancel, srv, serverErr, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, log *logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http_server_started", "port", port)
		if err := srv.Run(); err != nil {
			errCh <- err
		}
	}()
	return errCh
}

// waitForShutdown blocks until a termination signal or a server failure,
// then stops background work and drains in-flight requests.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, serverErr <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		cancel()
		log.Errorw("error starting server", "err", err)
		return err
	case <-quit:
	}

	log.Infow("shutting down server...")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	return nil
}
