// Package session holds the client's authenticated identity: the pairing
// of an optional user record and an optional bearer token. The pair is
// set and cleared together by the explicit login/registration/logout
// flows, but the API gateway may clear it unilaterally when the server
// answers 401, so callers must re-read the session after any remote call
// instead of trusting a copy captured before it.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apetrenko/eventhub/internal/client/models"
	"github.com/apetrenko/eventhub/internal/client/repositories/state"
	"github.com/apetrenko/eventhub/internal/logging"
)

// Storage keys. These two entries are the only durable state the client
// owns.
const (
	keyUser  = "user"
	keyToken = "authToken"
)

// Session is a point-in-time value copy of the client's identity.
type Session struct {
	User  *models.User
	Token string
}

// Anonymous reports whether no user is signed in.
func (s Session) Anonymous() bool {
	return s.User == nil
}

// Store owns the in-memory session and its two persisted entries.
type Store struct {
	repo state.Repository
	log  logging.Logger
	cur  Session
}

func NewStore(repo state.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop{}
	}
	return &Store{repo: repo, log: log}
}

// Restore rebuilds the session from the persisted entries at startup. It
// never fails: an absent user entry yields an anonymous session, and a
// stored user record that does not parse is discarded and its entry
// deleted so the next start is clean.
func (s *Store) Restore(ctx context.Context) Session {
	s.cur = Session{}

	raw, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		s.log.Warn(ctx, "session restore failed, starting anonymous", "error", err)
		return s.cur
	}
	if raw == nil {
		return s.cur
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		s.log.Warn(ctx, "discarding corrupt stored user record")
		if err := s.repo.Delete(ctx, keyUser); err != nil {
			s.log.Warn(ctx, "could not delete corrupt user record", "error", err)
		}
		return s.cur
	}

	token, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		s.log.Warn(ctx, "token restore failed, starting anonymous", "error", err)
		return s.cur
	}
	if token == nil {
		return s.cur
	}

	s.cur = Session{User: &user, Token: string(token)}
	return s.cur
}

// Establish replaces the session with the given user and persists it.
// A non-empty token is persisted in the same call, closing the window
// where one of the pair is set without the other; an empty token keeps
// whatever token is already held (login responses may omit it).
func (s *Store) Establish(ctx context.Context, user models.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}
	if err := s.repo.Set(ctx, keyUser, raw); err != nil {
		return fmt.Errorf("persist user record: %w", err)
	}
	if token != "" {
		if err := s.repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return fmt.Errorf("persist token: %w", err)
		}
	}

	u := user
	s.cur.User = &u
	if token != "" {
		s.cur.Token = token
	}
	return nil
}

// Clear resets the session to anonymous and deletes both persisted
// entries. Idempotent; fired by explicit logout and by the gateway's
// unauthorized handler.
func (s *Store) Clear(ctx context.Context) error {
	s.cur = Session{}
	if err := s.repo.Delete(ctx, keyUser); err != nil {
		return err
	}
	return s.repo.Delete(ctx, keyToken)
}

// Current returns a value copy of the in-memory session.
func (s *Store) Current() Session {
	if s.cur.User == nil {
		return Session{Token: s.cur.Token}
	}
	u := *s.cur.User
	return Session{User: &u, Token: s.cur.Token}
}

// Token returns the held bearer token, "" when anonymous. Shaped to plug
// straight into the gateway as its token source.
func (s *Store) Token() string {
	return s.cur.Token
}
