// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for HTTP response writing, reconstructing the page
// location of a request, HTTP client initialization, and identifier
// generation.
package utils
