// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/models"
)

// ConfigQueryParam is the query parameter carrying the URL override.
const ConfigQueryParam = "config"

// overrideStatus enumerates the variants of [OverrideResult].
type overrideStatus int

const (
	overrideAbsent overrideStatus = iota
	overrideDecoded
	overrideFailed
)

// OverrideResult is the outcome of extracting the URL override: absent,
// decoded into a partial configuration, or failed with a diagnostic error.
type OverrideResult struct {
	status   overrideStatus
	override models.Config
	err      error
}

// Override returns the decoded partial configuration, or nil and false when
// the result is absent or failed.
func (r OverrideResult) Override() (models.Config, bool) {
	return r.override, r.status == overrideDecoded
}

// Err returns the decoding failure, or nil.
func (r OverrideResult) Err() error {
	return r.err
}

// Absent reports whether no override parameter was supplied.
func (r OverrideResult) Absent() bool {
	return r.status == overrideAbsent
}

// ExtractOverride looks up the config parameter in query and decodes it.
// A missing or empty parameter yields an absent result.
func ExtractOverride(query url.Values) OverrideResult {
	raw := query.Get(ConfigQueryParam)
	if raw == "" {
		return OverrideResult{status: overrideAbsent}
	}

	override, err := DecodeOverride(raw)
	if err != nil {
		return OverrideResult{status: overrideFailed, err: err}
	}

	return OverrideResult{status: overrideDecoded, override: override}
}

// DecodeOverride base64-decodes raw and parses the text as a JSON object.
//
// The standard alphabet is tried first, then the URL-safe one, each with and
// without padding. Spaces are read as '+' since query decoding turns an
// unescaped '+' into a space.
func DecodeOverride(raw string) (models.Config, error) {
	decoded, err := decodeBase64(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOverrideBase64, err)
	}

	var doc any
	if err = json.Unmarshal(decoded, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOverrideJSON, err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrOverrideNotObject, jsonKind(doc))
	}

	return models.Config(obj), nil
}

// EncodeOverride is the inverse of [DecodeOverride]: it returns the padded
// standard base64 encoding of the JSON form of override.
func EncodeOverride(override models.Config) (string, error) {
	data, err := json.Marshal(override)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidOverrideBody, err)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// resolveOverride maps an [OverrideResult] to the override the merge step
// consumes, logging the outcome. Failures become an absent override.
func resolveOverride(result OverrideResult, log *logger.Logger) models.Config {
	if err := result.Err(); err != nil {
		log.Error().Err(err).Msg("failed to parse config from URL")
		return nil
	}

	override, ok := result.Override()
	if !ok {
		return nil
	}

	log.Info().Any("config", override).Msg("using config from URL parameters")
	return override
}

func decodeBase64(raw string) ([]byte, error) {
	value := strings.ReplaceAll(strings.TrimSpace(raw), " ", "+")

	var firstErr error
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.URLEncoding} {
		decoded, err := enc.DecodeString(value)
		if err == nil {
			return decoded, nil
		}
		if firstErr == nil {
			firstErr = err
		}

		decoded, err = enc.WithPadding(base64.NoPadding).DecodeString(strings.TrimRight(value, "="))
		if err == nil {
			return decoded, nil
		}
	}

	return nil, firstErr
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
