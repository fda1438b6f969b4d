package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dkrasnov/inkpress/internal/client/client"
	"github.com/dkrasnov/inkpress/internal/client/config"
	"github.com/dkrasnov/inkpress/internal/client/services"
	"github.com/dkrasnov/inkpress/internal/filex"
	"github.com/dkrasnov/inkpress/internal/pricing"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	publishService services.PublishService
	readService    services.ReadService
	userName       string
	Mode           Mode
	reader         *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	dbFile := c.DatabaseFile
	if !filepath.IsAbs(dbFile) {
		if dir, err := filex.EnsureDataDir(); err == nil {
			dbFile = filepath.Join(dir, dbFile)
		}
	}

	repos, err := client.InitDatabase(ctx, dbFile)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewLedgerClientService(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(apiClient, repos.Session)
	ps := services.NewPublishService(apiClient, repos.Outbox, repos.Published, pricing.DefaultRates(), 0)
	rs := services.NewReadService(apiClient)

	return &App{
		config:         c,
		authService:    as,
		publishService: ps,
		readService:    rs,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(pingCtx)
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
