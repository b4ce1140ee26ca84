// Package server runs the HTTP server of the viewer shell.
//
// It owns the server lifecycle: binding the listener, serving until a stop
// signal arrives, and shutting down gracefully within a bounded time.
package server
