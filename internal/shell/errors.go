// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package shell

import "errors"

var (
	// ErrReadingDocument is returned when the SPA document cannot be read.
	ErrReadingDocument = errors.New("error reading shell document")
	// ErrParsingDocument is returned when the SPA document cannot be parsed
	// as HTML.
	ErrParsingDocument = errors.New("error parsing shell document")
	// ErrMountPointNotFound is returned when the document has no element with
	// the mount point id.
	ErrMountPointNotFound = errors.New("mount point not found")
	// ErrEncodingProps is returned when the startup properties cannot be
	// serialized.
	ErrEncodingProps = errors.New("error encoding startup props")
	// ErrRenderingDocument is returned when the mounted document cannot be
	// rendered or written.
	ErrRenderingDocument = errors.New("error rendering shell document")
)
