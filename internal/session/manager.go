// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

// Manager loads, saves and destroys sessions.
type Manager struct {
	storage    store.SessionStorage
	cookieName string
	ttl        time.Duration
	secure     bool
	ids        utils.IDGenerator
	logger     *logger.Logger
}

func NewManager(storage store.SessionStorage, cfg config.Session, logger *logger.Logger) *Manager {
	return &Manager{
		storage:    storage,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.SecureCookie,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// Load returns the session referenced by the request cookie.
//
// Returns ErrNoSessionCookie when the request carries no cookie and
// store.ErrSessionNotFound when the record is missing or expired.
func (m *Manager) Load(r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSessionCookie
	}

	session, err := m.storage.GetSession(r.Context(), cookie.Value)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		return nil, store.ErrSessionNotFound
	}

	return session, nil
}

// Save persists session and (re)sets the cookie. A session without ID is
// assigned a new one. The expiry is moved to now + TTL on every save.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, session *models.Session) error {
	if session == nil {
		return ErrNilSession
	}

	now := time.Now()
	if session.ID == "" {
		session.ID = m.ids.Generate()
		session.CreatedAt = now
	}
	session.ExpiresAt = now.Add(m.ttl)

	if err := m.storage.SaveSession(ctx, session, m.ttl); err != nil {
		logger.FromContext(ctx).Err(err).Str("session_id", session.ID).Msg("saving session failed")
		return fmt.Errorf("saving session failed: %w", err)
	}

	http.SetCookie(w, m.cookie(session.ID, session.ExpiresAt, int(m.ttl.Seconds())))
	return nil
}

// Renew moves session to a fresh ID and drops the record under the old one.
// Call it whenever the session changes privilege, e.g. on login, so an ID
// seen before authentication cannot be reused after it.
func (m *Manager) Renew(ctx context.Context, w http.ResponseWriter, session *models.Session) error {
	if session == nil {
		return ErrNilSession
	}

	oldID := session.ID
	session.ID = ""
	if err := m.Save(ctx, w, session); err != nil {
		session.ID = oldID
		return err
	}
	if oldID == "" {
		return nil
	}

	err := m.storage.DeleteSession(ctx, oldID)
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		logger.FromContext(ctx).Err(err).Str("session_id", oldID).Msg("deleting renewed session failed")
		return fmt.Errorf("deleting renewed session failed: %w", err)
	}

	return nil
}

// Destroy deletes the session record and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, session *models.Session) error {
	http.SetCookie(w, m.cookie("", time.Unix(0, 0), -1))

	if session == nil || session.ID == "" {
		return nil
	}

	err := m.storage.DeleteSession(ctx, session.ID)
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		logger.FromContext(ctx).Err(err).Str("session_id", session.ID).Msg("deleting session failed")
		return fmt.Errorf("deleting session failed: %w", err)
	}

	return nil
}

// Middleware attaches the request session to the context when there is one.
// A storage failure is logged and the request proceeds without a session.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.Load(r)
		switch {
		case err == nil:
			r = r.WithContext(WithSession(r.Context(), session))
		case errors.Is(err, ErrNoSessionCookie), errors.Is(err, store.ErrSessionNotFound):
		default:
			logger.FromRequest(r).Err(err).Msg("loading session failed")
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Manager) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
