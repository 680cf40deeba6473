package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are not set")
	}
	if ui == nil {
		return nil, fmt.Errorf("ui is not set")
	}

	return &App{services: services, ui: ui, logger: log}, nil
}

// Run mounts the directory and blocks until the UI exits or the process is
// interrupted. The directory state does not outlive the call.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	dir := a.services.NewDirectory()
	a.logger.Info().Msg("directory mounted")

	if err := a.ui.Run(ctx, dir); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("directory unmounted")
	return nil
}
