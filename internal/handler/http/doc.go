// Package http implements the HTTP transport layer of the viewer shell.
//
// It wires the routes that serve the mounted SPA document, the resolved
// configuration and the override helper, and the middleware that handles
// request tracing, access logging and response compression before requests
// are delegated to the service layer.
package http
