// Package session owns the client-side identity: the bearer token and user
// record held in memory and mirrored in the local database. All other
// components read the session through accessors and never mutate it
// directly.
package session

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/anunciabr/anuncia/internal/client/api"
	"github.com/anunciabr/anuncia/internal/client/models"
	"github.com/anunciabr/anuncia/internal/client/repositories/sessionrec"
	"github.com/anunciabr/anuncia/internal/dbx"
	"github.com/anunciabr/anuncia/internal/logging"
)

// Backend is the slice of the API surface the store needs. *api.Client
// satisfies it; tests provide a fake.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.Credentials, error)
	Register(ctx context.Context, req *api.RegisterRequest) (*api.Credentials, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, u *models.User) (*models.User, error)
}

// State is a read-only snapshot of the session for guard decisions.
type State struct {
	Loading       bool
	Authenticated bool
	User          *models.User
}

// Store holds the current identity and keeps the in-memory copy and the
// persisted copy in lockstep: every mutation writes through to the local
// database before it is observable in memory.
type Store struct {
	backend Backend
	db      *sql.DB
	log     logging.Logger

	mu      sync.Mutex
	token   string
	user    *models.User
	loading bool
	// epoch increments on every wholesale session transition (login,
	// logout). An in-flight profile refresh is applied only if the epoch
	// it started under is still current, so a logout always wins.
	epoch uint64

	onLogout   []func()
	onHydrated func()
}

// NewStore builds a Store over the backend API and the local database.
func NewStore(backend Backend, db *sql.DB, log logging.Logger) *Store {
	return &Store{backend: backend, db: db, log: log}
}

func (s *Store) repo() sessionrec.Repository {
	return sessionrec.NewSQLiteRepository(s.db)
}

// OnLogout registers a hook fired once per authenticated→unauthenticated
// transition (never on repeated logouts). Used to clear ephemeral
// per-session state and to drive the login redirect.
func (s *Store) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// SetOnHydrated registers the callback invoked when hydration finishes,
// successfully or not. The navigator uses it to replay deferred routes.
func (s *Store) SetOnHydrated(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onHydrated = fn
}

// Hydrate restores the persisted session. When a complete {token, user}
// pair is found the store becomes authenticated immediately (fail-open)
// and then revalidates against the profile endpoint:
//
//   - refresh ok          → user replaced in memory and on disk;
//   - unauthorized        → full logout, the token is dead;
//   - any other failure   → optimistic session kept. Flaky connectivity
//     must not log anyone out.
//
// Loading() reports true for the whole duration; the route guard defers
// its decisions until then.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	epoch := s.epoch
	s.mu.Unlock()

	defer s.finishHydration()

	token, user, ok := s.loadPersisted(ctx)
	if !ok {
		return
	}

	s.mu.Lock()
	if s.epoch == epoch {
		s.token = token
		s.user = user
	}
	s.mu.Unlock()
	s.log.Info(ctx, "session restored from local storage", "email", user.Email)

	fresh, err := s.backend.Profile(ctx)
	switch {
	case err == nil:
		s.applyRefresh(ctx, epoch, fresh)

	case errors.Is(err, api.ErrUnauthorized):
		s.log.Warn(ctx, "persisted token rejected, logging out")
		s.Logout(ctx)

	default:
		s.log.Warn(ctx, "profile refresh failed, keeping persisted session", "error", err.Error())
	}
}

// loadPersisted reads {token, user} from the local database. Partial or
// corrupt state is defensively cleared and treated as absent.
func (s *Store) loadPersisted(ctx context.Context) (string, *models.User, bool) {
	repo := s.repo()

	rawToken, err := repo.Get(ctx, sessionrec.KeyToken)
	if err != nil {
		s.log.Error(ctx, "reading persisted token", "error", err.Error())
		return "", nil, false
	}
	rawUser, err := repo.Get(ctx, sessionrec.KeyUser)
	if err != nil {
		s.log.Error(ctx, "reading persisted user", "error", err.Error())
		return "", nil, false
	}

	if len(rawToken) == 0 && len(rawUser) == 0 {
		return "", nil, false
	}
	if len(rawToken) == 0 || len(rawUser) == 0 {
		s.log.Warn(ctx, "partial persisted session, clearing")
		_ = repo.Clear(ctx)
		return "", nil, false
	}

	user, err := models.DecodeUser(rawUser)
	if err != nil {
		s.log.Warn(ctx, "corrupt persisted user, clearing", "error", err.Error())
		_ = repo.Clear(ctx)
		return "", nil, false
	}
	return string(rawToken), user, true
}

func (s *Store) applyRefresh(ctx context.Context, epoch uint64, fresh *models.User) {
	s.mu.Lock()
	if s.epoch != epoch {
		// A logout (or new login) happened while the refresh was in
		// flight; its result is no longer relevant.
		s.mu.Unlock()
		s.log.Debug(ctx, "discarding stale profile refresh")
		return
	}
	s.user = fresh
	s.mu.Unlock()

	if err := s.persistUser(ctx, fresh); err != nil {
		s.log.Warn(ctx, "persisting refreshed profile", "error", err.Error())
		return
	}
	s.log.Info(ctx, "profile refreshed from backend")
}

func (s *Store) finishHydration() {
	s.mu.Lock()
	s.loading = false
	done := s.onHydrated
	s.mu.Unlock()

	if done != nil {
		done()
	}
}

// Login authenticates and replaces the session. On failure the existing
// session, if any, is left untouched and the error is returned for the
// caller to display.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	creds, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.adopt(ctx, creds); err != nil {
		return nil, err
	}
	return creds.User, nil
}

// Register creates an account and logs it in, with the same contract as
// Login.
func (s *Store) Register(ctx context.Context, req *api.RegisterRequest) (*models.User, error) {
	creds, err := s.backend.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.adopt(ctx, creds); err != nil {
		return nil, err
	}
	return creds.User, nil
}

// adopt persists the credentials (token and user in one transaction) and
// then installs them in memory. Persistence failures abort the adoption so
// memory and disk never diverge.
func (s *Store) adopt(ctx context.Context, creds *api.Credentials) error {
	encoded, err := models.EncodeUser(creds.User)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessionrec.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, sessionrec.KeyToken, []byte(creds.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, sessionrec.KeyUser, encoded)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = creds.Token
	s.user = creds.User
	s.epoch++
	s.mu.Unlock()
	return nil
}

// Logout clears the session in memory and on disk. Idempotent: repeated
// calls (or concurrent authentication failures) fire the logout hooks at
// most once per authenticated period.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.token != "" && s.user != nil
	s.token = ""
	s.user = nil
	s.epoch++
	hooks := s.onLogout
	s.mu.Unlock()

	if err := s.repo().Clear(ctx); err != nil {
		s.log.Error(ctx, "clearing persisted session", "error", err.Error())
	}

	if wasAuthenticated {
		s.log.Info(ctx, "logged out")
		for _, h := range hooks {
			h()
		}
	}
}

// UpdateUser replaces the user record after a profile edit, leaving the
// token untouched.
func (s *Store) UpdateUser(ctx context.Context, u *models.User) error {
	if err := s.persistUser(ctx, u); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return nil
}

func (s *Store) persistUser(ctx context.Context, u *models.User) error {
	encoded, err := models.EncodeUser(u)
	if err != nil {
		return err
	}
	return s.repo().Set(ctx, sessionrec.KeyUser, encoded)
}

// Token returns the current bearer token ("" when logged out). Wired as
// the API client's token source.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the current user record, or nil.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Loading reports whether hydration is still in progress.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsAuthenticated reports whether both a token and a user are present.
// Partial state counts as unauthenticated.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Store) IsAdmin() bool {
	u := s.User()
	return u != nil && u.Role == models.RoleAdmin
}

// IsAgency reports whether the session belongs to an agency account.
func (s *Store) IsAgency() bool {
	u := s.User()
	return u != nil && u.Role == models.RoleAgency
}

// Snapshot returns the session state the route guard decides on.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Loading:       s.loading,
		Authenticated: s.token != "" && s.user != nil,
		User:          s.user,
	}
}
