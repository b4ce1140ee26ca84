package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// URL override decoding errors. They are logged and never surfaced to the
	// page; the pipeline proceeds as if no override was supplied.
	ErrOverrideBase64    = errors.New("config override is not valid base64")
	ErrOverrideJSON      = errors.New("config override is not valid JSON")
	ErrOverrideNotObject = errors.New("config override is not a JSON object")

	// ErrInvalidOverrideBody is returned when a partial configuration sent
	// for encoding cannot be used.
	ErrInvalidOverrideBody = errors.New("invalid config override body")

	// ErrAlreadyMounted is returned when a pipeline is asked to mount twice.
	ErrAlreadyMounted = errors.New("shell already mounted")
	// ErrStageOutOfOrder is returned when a pipeline stage runs before the
	// stage it depends on.
	ErrStageOutOfOrder = errors.New("bootstrap stage out of order")
)
