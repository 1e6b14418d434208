// Package cli implements the interactive Reflecta client: a small REPL over
// the sync engine, with a background reachability watcher that triggers
// auto-sync when connectivity returns.
package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/reflecta-app/reflecta/internal/client/config"
	"github.com/reflecta-app/reflecta/internal/client/remote"
	"github.com/reflecta-app/reflecta/internal/client/repositories/cache"
	"github.com/reflecta-app/reflecta/internal/client/repositories/drafts"
	"github.com/reflecta-app/reflecta/internal/client/services"
	"github.com/reflecta-app/reflecta/internal/client/storage"
	"github.com/reflecta-app/reflecta/internal/logging"
	"github.com/reflecta-app/reflecta/internal/netx"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	api      *remote.HTTPClient
	sync     *services.SyncService
	prober   *netx.Prober
	reader   *bufio.Reader
	userName string
	Mode     Mode
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	kv := storage.NewSQLiteKV(db)
	api := remote.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	prober := netx.NewProber(api.HealthURL(), c.ProbeTimeout)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	syncService := services.NewSyncService(
		api,
		drafts.NewKVStore(kv),
		cache.NewKVStore(kv),
		prober,
		logger,
		c.StalenessThreshold,
	)

	return &App{
		config: c,
		api:    api,
		sync:   syncService,
		prober: prober,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// StartOnlineStatusWatcher periodically probes the server and flips the app
// mode. A transition back to online triggers a best-effort auto-sync of the
// draft queue.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if a.prober.IsOnline(ctx) {
				wasOffline := a.Mode != ModeOnline
				a.setMode(ModeOnline)
				if wasOffline && a.isLoggedIn() {
					a.sync.AutoSync(ctx)
				}
			} else {
				a.setMode(ModeOffline)
			}

		case <-ctx.Done():
			return
		}
	}
}
