package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until ctx is done or SIGINT, SIGTERM or
	// SIGQUIT is received, then shuts every transport down gracefully.
	// A transport failing while serving is returned as an error.
	RunServer(ctx context.Context) error
}

// transport is a single listener managed by [Server].
type transport interface {
	// serve blocks until the transport stops. A graceful stop is not an
	// error.
	serve() error

	// shutdown stops the transport, waiting for in-flight requests until
	// ctx is done.
	shutdown(ctx context.Context) error

	name() string
}
