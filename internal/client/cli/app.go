package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/api"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/config"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/services"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/session"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/store"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/uploads"
	"github.com/Abeygunawardhanahs/spiceslink/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	log    logging.Logger

	store        *store.Store
	authService  services.AuthService
	priceService services.PriceService
	shopService  services.ShopService
	images       uploads.Resolver

	db     *sql.DB
	Mode   Mode
	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	st := store.New(apiClient, session.NewSQLiteRepository(db), log, c.ReconcileDelay)

	var images uploads.Resolver = uploads.Passthrough{}
	if c.CloudinaryURL != "" {
		resolver, err := uploads.NewCloudinaryResolver(c.CloudinaryURL)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		images = resolver
	}

	return &App{
		config:       c,
		log:          log,
		store:        st,
		authService:  services.NewAuthService(apiClient, st),
		priceService: services.NewPriceService(apiClient, st),
		shopService:  services.NewShopService(apiClient, st),
		images:       images,
		db:           db,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.store.Token() != ""
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) getStatus() string {
	s := ""
	if u := a.store.CurrentUser(); u != nil && u.ShopName != "" {
		s = u.ShopName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run restores the persisted session, starts the connectivity watcher and
// blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	printlnFn("SpicesLink CLI (type 'help' for commands)")

	a.store.LoadPersistedSession(ctx)
	if a.isLoggedIn() {
		printlnFn("Session restored. Type 'help' for commands.")
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// StartOnlineStatusWatcher periodically probes server reachability and
// updates the displayed mode accordingly. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
