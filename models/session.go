package models

import "time"

// Session is the server-side state bound to a session cookie.
type Session struct {
	// ID is the opaque identifier stored in the session cookie.
	ID string `json:"id"`

	// APIToken is the signed API token issued at login. It is used as a
	// fallback when a request carries no Authorization header.
	APIToken string `json:"apiToken,omitempty"`

	// Cart is the cart of a visitor that is not logged in.
	Cart *CartData `json:"cart,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired reports whether the session is past its expiry time.
func (s *Session) IsExpired() bool {
	return s != nil && !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
