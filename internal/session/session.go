package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/hearsay-social/hearsay/internal/cache"
	"github.com/hearsay-social/hearsay/internal/pkg/log"
)

const (
	// CookieName is the session cookie carried by the browser.
	CookieName = "qid"

	// ContextKey locates the request session in a context.
	ContextKey = "session"

	keyPrefix = "sess:"

	// Lifetime matches the cookie: 10 years.
	Lifetime = 10 * 365 * 24 * time.Hour
)

// record is the cache-side shape of a session entry.
type record struct {
	UserID string `json:"userId"`
}

// Session is the per-request session state. It is mutated by the login,
// register and logout operations and persisted by the manager once the
// request completes.
type Session struct {
	id        string
	userID    uuid.UUID
	dirty     bool
	destroyed bool
}

// UserID returns the authenticated user id and whether one is set.
func (s *Session) UserID() (uuid.UUID, bool) {
	if s == nil || s.userID == uuid.Nil {
		return uuid.Nil, false
	}
	return s.userID, true
}

// SetUserID binds the session to a user. The manager persists the
// change after the request.
func (s *Session) SetUserID(id uuid.UUID) {
	s.userID = id
	s.destroyed = false
	s.dirty = true
}

// Destroy marks the session for deletion.
func (s *Session) Destroy() {
	s.userID = uuid.Nil
	s.dirty = false
	s.destroyed = true
}

// FromContext retrieves the request session, or nil when no session
// middleware ran.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(ContextKey).(*Session); ok {
		return s
	}
	return nil
}

// Manager loads and persists sessions against the cache.
type Manager struct {
	cache  cache.Cache
	secure bool
}

// NewManager creates a session manager. secure controls the cookie's
// Secure flag and is tied to the deployment environment.
func NewManager(c cache.Cache, secure bool) *Manager {
	return &Manager{cache: c, secure: secure}
}

// Load resolves a session id to its session. An empty or unknown id
// yields a fresh anonymous session.
func (m *Manager) Load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return &Session{}, nil
	}

	data, err := m.cache.Get(ctx, keyPrefix+id)
	if err != nil {
		if err == cache.ErrKeyNotFound {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	userID, err := uuid.FromString(rec.UserID)
	if err != nil {
		return &Session{id: id}, nil
	}

	return &Session{id: id, userID: userID}, nil
}

// Save persists a dirty session and returns its id, generating one for
// fresh sessions.
func (m *Manager) Save(ctx context.Context, s *Session) (string, error) {
	if s.id == "" {
		sid, err := uuid.NewV4()
		if err != nil {
			return "", fmt.Errorf("failed to generate session id: %w", err)
		}
		s.id = sid.String()
	}

	data, err := json.Marshal(record{UserID: s.userID.String()})
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}

	if err := m.cache.Set(ctx, keyPrefix+s.id, data, Lifetime); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	s.dirty = false
	return s.id, nil
}

// Delete removes a persisted session.
func (m *Manager) Delete(ctx context.Context, s *Session) error {
	if s.id == "" {
		return nil
	}
	if err := m.cache.Delete(ctx, keyPrefix+s.id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Middleware loads the session before the handler runs and persists
// cookie plus cache entry afterwards.
func (m *Manager) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := m.Load(c.Context(), c.Cookies(CookieName))
		if err != nil {
			log.Warn("session load failed: %v", err)
			s = &Session{}
		}
		c.Locals(ContextKey, s)

		handlerErr := c.Next()

		switch {
		case s.destroyed:
			if err := m.Delete(c.Context(), s); err != nil {
				log.Error("session delete failed: %v", err)
			}
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    "",
				Expires:  time.Now().Add(-time.Hour),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				Secure:   m.secure,
				Path:     "/",
			})
		case s.dirty:
			sid, err := m.Save(c.Context(), s)
			if err != nil {
				log.Error("session save failed: %v", err)
				break
			}
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    sid,
				MaxAge:   int(Lifetime.Seconds()),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				Secure:   m.secure,
				Path:     "/",
			})
		}

		return handlerErr
	}
}
