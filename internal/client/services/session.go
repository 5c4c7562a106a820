// Package services contains the application services of the MessMate
// client: the session manager owning authentication state, and thin domain
// services bridging the API client to the pagination and CLI layers.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/messmate/internal/client/models"
	"github.com/dmitrijs2005/messmate/internal/client/repositories/cache"
	"github.com/dmitrijs2005/messmate/internal/client/repositories/secrets"
	"github.com/dmitrijs2005/messmate/internal/common"
	"github.com/dmitrijs2005/messmate/internal/logging"
)

// AuthAPI is the slice of the API client the session manager needs: the
// credential exchange, the profile fetch used to validate tokens, and the
// token installation hooks.
type AuthAPI interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, email, password, name string) (string, error)
	GetProfile(ctx context.Context) (*models.User, error)
	SetToken(token string)
	ClearToken()
}

// SessionManager owns the single authoritative session of the process.
//
// Contract:
//   - Initialize: restore the persisted session and revalidate it.
//   - SignIn/SignInWithPassword/SignUpWithPassword: establish a session.
//   - SignOut: tear the session down; idempotent.
//   - UpdateUser: replace the in-memory and cached profile.
//
// A 401/403 on the profile fetch is the only failure that forcibly signs
// the session out; every other failure is treated as transient and leaves
// the session alone during background revalidation.
type SessionManager interface {
	Initialize(ctx context.Context) (<-chan error, error)
	SignIn(ctx context.Context, token string) error
	SignInWithPassword(ctx context.Context, email, password string) error
	SignUpWithPassword(ctx context.Context, email, password, name string) error
	SignOut(ctx context.Context) error
	UpdateUser(ctx context.Context, user *models.User) error
	CurrentUser() *models.User
	IsAuthenticated() bool
	IsLoading() bool
	TokenExpiry() (time.Time, bool)
}

// Session is the concrete SessionManager backed by the secrets store, the
// cache store and the remote API.
type Session struct {
	api     AuthAPI
	secrets secrets.Repository
	cache   cache.Repository
	log     logging.Logger

	mu      sync.Mutex
	user    *models.User
	token   string
	loading bool
}

// NewSession constructs a session in its pre-Initialize state: empty and
// loading, so the caller can block interactive actions until Initialize
// has settled.
func NewSession(api AuthAPI, sec secrets.Repository, cch cache.Repository, log logging.Logger) *Session {
	return &Session{api: api, secrets: sec, cache: cch, log: log, loading: true}
}

var _ SessionManager = (*Session)(nil)

// Initialize restores the session from local storage and reconciles it
// with the server.
//
// Without a persisted token the session settles unauthenticated. With a
// token and a cached profile, the session becomes authenticated
// immediately from the cache and a background profile fetch is started;
// its outcome is reported on the returned channel. The background fetch
// only signs the session out when the server explicitly rejects the token;
// transient failures keep the stale profile, since optimistic local state
// beats a forced logout on a flaky network. With a token but no cached
// profile, the fetch is synchronous and any failure clears the session.
//
// The returned channel is nil when no background revalidation was started.
func (s *Session) Initialize(ctx context.Context) (<-chan error, error) {
	tok, err := s.secrets.Get(ctx, common.TokenStorageKey)
	if err != nil {
		s.setLoading(false)
		return nil, fmt.Errorf("read persisted token: %w", err)
	}
	if len(tok) == 0 {
		s.setLoading(false)
		return nil, nil
	}

	s.mu.Lock()
	s.token = string(tok)
	s.mu.Unlock()
	s.api.SetToken(string(tok))

	if exp, ok := s.TokenExpiry(); ok && exp.Before(time.Now()) {
		s.log.Warn(ctx, "persisted token is past its expiry", "expired_at", exp)
	}

	cached, err := s.cache.Get(ctx, common.UserStorageKey)
	if err == nil && len(cached) > 0 {
		var u models.User
		if jsonErr := json.Unmarshal(cached, &u); jsonErr == nil {
			s.mu.Lock()
			s.user = &u
			s.loading = false
			s.mu.Unlock()
			s.log.Info(ctx, "session hydrated from cache", "user_id", u.ID)

			done := make(chan error, 1)
			go func() {
				done <- s.revalidate(context.WithoutCancel(ctx))
			}()
			return done, nil
		}
		s.log.Warn(ctx, "cached profile is corrupt, refetching")
	}

	// Token present but no usable cached profile: the fetch is the only
	// way to establish identity, so it blocks and any failure invalidates
	// the credential.
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		s.log.Warn(ctx, "profile fetch for persisted token failed, signing out", "error", err)
		if soErr := s.SignOut(ctx); soErr != nil {
			s.log.Error(ctx, "sign out after failed validation", "error", soErr)
		}
		s.setLoading(false)
		return nil, fmt.Errorf("validate persisted token: %w", err)
	}

	if err := s.storeUser(ctx, user); err != nil {
		s.log.Warn(ctx, "cache profile", "error", err)
	}
	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
	return nil, nil
}

// revalidate refreshes the cached profile against the server. Only an
// explicit authorization rejection tears the session down.
func (s *Session) revalidate(ctx context.Context) error {
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.log.Info(ctx, "token rejected by server, signing out")
			if soErr := s.SignOut(ctx); soErr != nil {
				s.log.Error(ctx, "sign out after token rejection", "error", soErr)
			}
			return err
		}
		s.log.Warn(ctx, "profile revalidation failed, keeping cached session", "error", err)
		return err
	}

	if err := s.storeUser(ctx, user); err != nil {
		s.log.Warn(ctx, "cache profile", "error", err)
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// SignIn adopts the given bearer token: it is persisted first so the
// profile fetch can use it, then validated by fetching the profile. Any
// failure reverts everything: the token is removed from storage and the
// in-memory session is cleared, so a failed sign-in never leaves a
// partially-authenticated state behind.
func (s *Session) SignIn(ctx context.Context, token string) error {
	s.mu.Lock()
	s.loading = true
	s.token = token
	s.mu.Unlock()
	s.api.SetToken(token)

	if err := s.secrets.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
		s.clearMemory()
		return fmt.Errorf("persist token: %w", err)
	}

	user, err := s.api.GetProfile(ctx)
	if err != nil {
		if delErr := s.secrets.Delete(ctx, common.TokenStorageKey); delErr != nil {
			s.log.Error(ctx, "remove token after failed sign in", "error", delErr)
		}
		if delErr := s.cache.Delete(ctx, common.UserStorageKey); delErr != nil {
			s.log.Error(ctx, "remove cached profile after failed sign in", "error", delErr)
		}
		s.clearMemory()
		return fmt.Errorf("sign in: %w", err)
	}

	if err := s.storeUser(ctx, user); err != nil {
		s.log.Warn(ctx, "cache profile", "error", err)
	}
	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
	s.log.Info(ctx, "signed in", "user_id", user.ID)
	return nil
}

// SignInWithPassword exchanges credentials for a token and adopts it.
func (s *Session) SignInWithPassword(ctx context.Context, email, password string) error {
	token, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return s.SignIn(ctx, token)
}

// SignUpWithPassword registers a new account and adopts the issued token.
func (s *Session) SignUpWithPassword(ctx context.Context, email, password, name string) error {
	token, err := s.api.SignUp(ctx, email, password, name)
	if err != nil {
		return err
	}
	return s.SignIn(ctx, token)
}

// SignOut removes the persisted token and cached profile and clears the
// in-memory session. Calling it when already signed out is a no-op.
func (s *Session) SignOut(ctx context.Context) error {
	var firstErr error
	if err := s.secrets.Delete(ctx, common.TokenStorageKey); err != nil {
		firstErr = err
	}
	if err := s.cache.Delete(ctx, common.UserStorageKey); err != nil && firstErr == nil {
		firstErr = err
	}
	s.clearMemory()
	return firstErr
}

// UpdateUser replaces the in-memory profile and its cached copy. The token
// is untouched; this is for profile edits performed elsewhere.
func (s *Session) UpdateUser(ctx context.Context, user *models.User) error {
	if err := s.storeUser(ctx, user); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// CurrentUser returns the session's user, or nil when unauthenticated.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether both a token and a user are present.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// IsLoading reports whether a validation or fetch is in flight. Callers
// should suppress sign-in actions while it is true.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// TokenExpiry returns the bearer token's exp claim without verifying the
// signature (the client has no key to verify with; authorization stays
// the server's call). ok is false when there is no token or no readable
// expiry.
func (s *Session) TokenExpiry() (time.Time, bool) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Session) storeUser(ctx context.Context, user *models.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.cache.Set(ctx, common.UserStorageKey, b); err != nil {
		return fmt.Errorf("cache profile: %w", err)
	}
	return nil
}

func (s *Session) clearMemory() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.loading = false
	s.mu.Unlock()
	s.api.ClearToken()
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
