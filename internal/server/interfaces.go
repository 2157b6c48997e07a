package server

// Server runs every configured transport of the photo album API.
type Server interface {
	// RunServer blocks until a stop signal arrives or a transport fails.
	RunServer()

	// Shutdown stops every transport. Safe to call more than once.
	Shutdown()
}

// transport is one listener managed by [Server].
type transport interface {
	// serve blocks until the transport is shut down. A transport stopped by
	// shutdown returns nil.
	serve() error
	shutdown()
	name() string
}
