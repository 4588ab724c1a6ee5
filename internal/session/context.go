package session

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

type sessionContextKey struct{}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// FromContext retrieves the session attached by the middleware. ok is false
// when the request has no session.
func FromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*models.Session)
	return session, ok && session != nil
}
