package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dtroode/devserve/internal/logger"
	"github.com/dtroode/devserve/internal/model"
)

const shutdownTimeout = 10 * time.Second

// App runs a single server until its context is cancelled or serving fails.
type App struct {
	server        model.Server
	securityLayer model.SecurityLayer
	banner        []string
	out           io.Writer
	logger        *logger.Logger
}

// New creates an App. banner lines are written to out once the listener
// is bound.
func New(
	server model.Server,
	securityLayer model.SecurityLayer,
	banner []string,
	out io.Writer,
	logger *logger.Logger,
) *App {
	return &App{
		server:        server,
		securityLayer: securityLayer,
		banner:        banner,
		out:           out,
		logger:        logger,
	}
}

// Run starts the server and blocks. It returns nil after ctx is cancelled
// and the server has shut down, or the error that stopped serving.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start(a.securityLayer)
	}()

	select {
	case <-a.server.Ready():
		a.logger.Info("Starting server on", "address", a.server.Address())
		a.printBanner()
	case err := <-errCh:
		return serveError(err)
	case <-ctx.Done():
	}

	select {
	case <-ctx.Done():
		fmt.Fprintln(a.out, "\n👋 Server stopped")
		a.logger.Info("received interruption signal, shutting down")
	case err := <-errCh:
		return serveError(err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.logger.Error("error during server shutdown", "error", err, "address", a.server.Address())
	}

	if err := <-errCh; err != nil {
		return serveError(err)
	}

	a.logger.Info("shutdown complete")
	return nil
}

func (a *App) printBanner() {
	for _, line := range a.banner {
		fmt.Fprintln(a.out, line)
	}
}

func serveError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("server error: %w", err)
}
