// Package server initializes and runs the Reflecta backend: it opens the
// database, runs migrations, and serves the HTTP API until interrupted.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/reflecta-app/reflecta/internal/logging"
	"github.com/reflecta-app/reflecta/internal/server/config"
	"github.com/reflecta-app/reflecta/internal/server/httpapi"
	"github.com/reflecta-app/reflecta/internal/server/repositories/repomanager"
	"github.com/reflecta-app/reflecta/internal/server/services"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	manager      repomanager.RepositoryManager
	userService  *services.UserService
	entryService *services.EntryService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := repomanager.NewPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(m.DB(), m, c)
	es := services.NewEntryService(m.DB(), m, services.NewTemplateReflector())

	return &App{config: c, logger: logger, manager: m, userService: us, entryService: es}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.entryService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.manager.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Warn(ctx, "error closing database", "error", err)
	}

	return nil
}
