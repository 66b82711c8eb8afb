package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/anunciabr/anuncia/internal/client/api"
	"github.com/anunciabr/anuncia/internal/client/config"
	"github.com/anunciabr/anuncia/internal/client/guard"
	"github.com/anunciabr/anuncia/internal/client/localdb"
	"github.com/anunciabr/anuncia/internal/client/models"
	"github.com/anunciabr/anuncia/internal/client/nav"
	"github.com/anunciabr/anuncia/internal/client/quota"
	"github.com/anunciabr/anuncia/internal/client/session"
	"github.com/anunciabr/anuncia/internal/logging"
	"github.com/rs/zerolog"
)

// App owns the wired-together client: configuration, local database,
// backend API client, session store, navigator and quota gate, plus the
// interactive state of the REPL.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	api      *api.Client
	sessions *session.Store
	nav      *nav.Navigator
	gate     *quota.Gate
	reader   *bufio.Reader

	draftMu sync.Mutex
	draft   *models.ListingDraft
}

// NewApp builds the application and wires the cross-component hooks:
//
//   - the API client pulls its bearer token from the session store;
//   - a 401/403 from the backend logs the session out and forces the
//     login view, unless an auth view is already active;
//   - finished hydration replays any navigation the guard deferred;
//   - logging out discards a half-filled listing draft.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewConsoleLogger(os.Stderr, zerolog.InfoLevel)

	db, err := localdb.Open(ctx, c.LocalDBPath)
	if err != nil {
		log.Error(ctx, "opening local database", "error", err.Error())
		return nil, err
	}

	apiClient := api.New(c.APIBaseURL, c.RequestTimeout)
	sessions := session.NewStore(apiClient, db, log)
	navigator := nav.New(guard.New(sessions), log)

	a := &App{
		config:   c,
		log:      log,
		db:       db,
		api:      apiClient,
		sessions: sessions,
		nav:      navigator,
		gate:     quota.New(apiClient, log),
		reader:   bufio.NewReader(os.Stdin),
	}

	apiClient.TokenFunc = sessions.Token
	apiClient.SuppressAuthFailure = func() bool {
		return nav.IsAuthView(navigator.Current())
	}
	apiClient.OnAuthFailure = func() {
		sessions.Logout(context.Background())
		navigator.ForceLogin(context.Background())
	}

	sessions.SetOnHydrated(func() {
		navigator.Resume(context.Background())
	})
	sessions.OnLogout(a.clearDraft)

	navigator.SetOnChange(a.renderView)

	return a, nil
}

// Run hydrates the session in the background and hands control to the
// REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	go a.sessions.Hydrate(ctx)
	a.nav.Navigate(nav.RouteHome)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

func (a *App) getStatus() string {
	u := a.sessions.User()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Email, u.Role)
}

func (a *App) clearDraft() {
	a.draftMu.Lock()
	a.draft = nil
	a.draftMu.Unlock()
}
