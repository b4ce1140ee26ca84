package adapter

import "errors"

var (
	// ErrDynamicConfigFetch wraps every failure to retrieve a dynamic
	// configuration document.
	ErrDynamicConfigFetch = errors.New("error fetching dynamic config")
	// ErrDynamicConfigDecode is returned when the fetched document is not a
	// JSON object (or null).
	ErrDynamicConfigDecode = errors.New("error decoding dynamic config")
	// ErrInvalidLoaderSettings is returned by [NewHTTPConfigLoader] when the
	// public base URL cannot serve as a resolution base.
	ErrInvalidLoaderSettings = errors.New("invalid dynamic loader settings")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
