package session

import "errors"

var (
	ErrNoSessionCookie = errors.New("no session cookie")
	ErrNilSession      = errors.New("session is nil")
)
