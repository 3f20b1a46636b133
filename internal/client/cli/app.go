package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/instaphotos/internal/client/config"
	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
	"github.com/dmitrijs2005/instaphotos/internal/client/services"
	"github.com/dmitrijs2005/instaphotos/internal/client/state"
	"github.com/dmitrijs2005/instaphotos/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	engine *services.Engine
	api    *remote.GRPCRemote
	Mode   Mode
	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	api, err := remote.NewGRPCRemote(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	blobs, err := remote.NewS3BlobStore(ctx, c.S3)
	if err != nil {
		return nil, err
	}

	engine := services.New(api, api, blobs, state.NewStore(),
		logging.NewSlogLogger(slog.Default()))

	return &App{config: c, engine: engine, api: api, reader: bufio.NewReader(os.Stdin)}, nil
}

func (app *App) setMode(mode Mode) {
	if app.Mode != mode {
		app.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.engine.State().Snapshot().SignedIn
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(ctx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
