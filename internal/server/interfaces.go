package server

// Server runs the viewer shell's HTTP server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives and
	// the server has shut down.
	RunServer()

	// Shutdown stops accepting requests and waits, within a bounded time,
	// for in-flight requests to finish.
	Shutdown()
}
