package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/healthlens/healthlens-go/pkg/apiclient"
	"github.com/healthlens/healthlens-go/pkg/credentials"
)

// Backend is the slice of the API client the session store depends on.
// *apiclient.Client satisfies it.
type Backend interface {
	Get(ctx context.Context, endpoint string, opts ...apiclient.RequestOption) (json.RawMessage, error)
	Post(ctx context.Context, endpoint string, body any, opts ...apiclient.RequestOption) (json.RawMessage, error)
	Put(ctx context.Context, endpoint string, body any, opts ...apiclient.RequestOption) (json.RawMessage, error)
	Upload(ctx context.Context, endpoint, field, filename string, r io.Reader, opts ...apiclient.RequestOption) (json.RawMessage, error)
}

const (
	loginEndpoint   = "/auth/login"
	signupEndpoint  = "/auth/signup"
	logoutEndpoint  = "/auth/logout"
	profileEndpoint = "/user/profile"
	avatarEndpoint  = "/user/avatar"

	// avatarField is the multipart form field the backend expects.
	avatarField = "file"
)

// Store owns the client-side session: the current user identity, the
// persisted bearer credential, and every lifecycle operation that mutates
// them. Create exactly one Store per process and inject it where needed.
//
// Mutating operations issue their network call without holding the state
// lock and commit results through a request-generation check, so a stale
// response can never overwrite state written by a newer operation.
type Store struct {
	backend Backend
	creds   credentials.Store
	logger  *slog.Logger

	mu          sync.Mutex
	user        *Identity
	loading     bool
	busy        bool
	initialized bool
	gen         uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for best-effort failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a session store. The store starts in the loading state until
// Initialize settles.
func New(backend Backend, creds credentials.Store, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		creds:   creds,
		logger:  slog.Default(),
		loading: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns an immutable copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Loading: s.loading,
		Busy:    s.busy,
	}
	switch {
	case !s.initialized || s.loading:
		snap.Status = StatusUninitialized
	case s.user != nil:
		snap.Status = StatusAuthenticated
	default:
		snap.Status = StatusUnauthenticated
	}
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}

// Initialize resolves the startup session state. It must be called exactly
// once, at process start.
//
// With no persisted credential it settles immediately: no user, no network
// call. With a credential it verifies via GET /user/profile; on any failure
// the user stays absent but the credential is kept, distinguishing "could
// not verify right now" from an explicit sign-out. Loading becomes false
// when Initialize returns, on every path, and never true again.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return ErrAlreadyInitialized
	}
	s.initialized = true
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	if _, err := s.creds.Load(); err != nil {
		if !errors.Is(err, credentials.ErrNotFound) {
			s.logger.Warn("credential load failed", "error", err)
		}
		return nil
	}

	raw, err := s.backend.Get(ctx, profileEndpoint)
	if err != nil {
		// Verification failure clears the user but keeps the credential;
		// a later restart may silently re-authenticate.
		s.logger.Warn("session verification failed", "error", err)
		return nil
	}

	var user Identity
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn("session verification returned malformed profile", "error", err)
		return nil
	}

	s.commit(gen, func() { s.user = &user })
	return nil
}

// authResponse is the shape of successful login and signup responses.
type authResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        *Identity `json:"user"`
}

// SignIn authenticates with email and password. On success the returned
// credential is persisted and the user identity installed in one step; on
// failure prior state and the credential slot are left untouched and the
// backend's message is returned.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	gen := s.begin()

	raw, err := s.backend.Post(ctx, loginEndpoint, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	return s.installAuth(gen, raw)
}

// SignUp registers a new account. Same contract as SignIn; additionally the
// Busy flag is set for the duration of the call and reset on every exit.
func (s *Store) SignUp(ctx context.Context, email, password, name string) error {
	s.mu.Lock()
	s.busy = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	gen := s.begin()

	raw, err := s.backend.Post(ctx, signupEndpoint, map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
	if err != nil {
		return err
	}

	return s.installAuth(gen, raw)
}

// SignOut ends the session. The remote logout call is best-effort: its
// failure is logged, never surfaced, and local state is cleared regardless,
// so the client can never stay stuck looking authenticated after a backend
// hiccup.
func (s *Store) SignOut(ctx context.Context) {
	// Bump the generation first so any response still in flight from an
	// earlier operation cannot resurrect the session.
	s.begin()

	if _, err := s.backend.Post(ctx, logoutEndpoint, nil); err != nil {
		s.logger.Warn("remote logout failed", "error", err)
	}

	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("credential clear failed", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// UpdateProfile applies a partial identity update. It fails fast without a
// network call when no user is signed in; on success the user is replaced
// with the server's canonical identity.
func (s *Store) UpdateProfile(ctx context.Context, updates ProfileUpdate) error {
	if !s.hasUser() {
		return ErrNoUser
	}

	gen := s.begin()

	raw, err := s.backend.Put(ctx, profileEndpoint, updates)
	if err != nil {
		return err
	}

	var user Identity
	if err := json.Unmarshal(raw, &user); err != nil {
		return fmt.Errorf("session: malformed profile response: %w", err)
	}

	if !s.commit(gen, func() { s.user = &user }) {
		return ErrSuperseded
	}
	return nil
}

// UploadAvatar uploads a new avatar image and records the returned URL on
// the current user.
func (s *Store) UploadAvatar(ctx context.Context, filename string, r io.Reader) error {
	if !s.hasUser() {
		return ErrNoUser
	}

	gen := s.begin()

	raw, err := s.backend.Upload(ctx, avatarEndpoint, avatarField, filename, r)
	if err != nil {
		return err
	}

	var payload struct {
		AvatarURL string `json:"avatarUrl"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("session: malformed avatar response: %w", err)
	}

	if !s.commit(gen, func() {
		if s.user != nil {
			s.user.AvatarURL = payload.AvatarURL
		}
	}) {
		return ErrSuperseded
	}
	return nil
}

// installAuth persists the credential and installs the user from an auth
// response, atomically with respect to the generation check.
func (s *Store) installAuth(gen uint64, raw json.RawMessage) error {
	var payload authResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("session: malformed auth response: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return ErrSuperseded
	}

	if payload.AccessToken != "" {
		if err := s.creds.Save(payload.AccessToken); err != nil {
			return fmt.Errorf("session: persist credential: %w", err)
		}
	}
	if payload.User != nil {
		s.user = payload.User
	}
	return nil
}

// begin marks the start of a mutating operation and returns its generation.
func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// commit applies fn only if no newer operation has begun since gen was
// issued. It reports whether the write was applied.
func (s *Store) commit(gen uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	fn()
	return true
}

func (s *Store) hasUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}
