// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/viewer-shell/internal/config"
	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/internal/utils"
	"github.com/MKhiriev/viewer-shell/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLoader builds an httpConfigLoader from cfg with a short timeout
// unless cfg sets one.
func newTestLoader(t *testing.T, cfg config.Loader) ConfigLoader {
	t.Helper()
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 2 * time.Second
	}
	loader, err := NewHTTPConfigLoader(cfg, logger.Nop())
	require.NoError(t, err)
	return loader
}

// loaderFor builds a loader whose public base URL is the test server.
func loaderFor(t *testing.T, srv *httptest.Server) ConfigLoader {
	t.Helper()
	return newTestLoader(t, config.Loader{PublicBaseURL: srv.URL})
}

func hostOf(t *testing.T, rawURL string) string {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Host
}

// countingServer serves body and counts the requests it receives.
func countingServer(t *testing.T, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func dynamicBase(regex string) models.Config {
	return models.Config{
		"routerBasename": "/",
		dynamicConfigKey: map[string]any{"enabled": true, "regex": regex},
	}
}

func pageLocation(t *testing.T, configURL string) *url.URL {
	t.Helper()
	u, err := url.Parse("http://viewer.local/viewer")
	require.NoError(t, err)
	if configURL != "" {
		u.RawQuery = url.Values{configURLParam: {configURL}}.Encode()
	}
	return u
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewHTTPConfigLoader_InvalidBaseURL(t *testing.T) {
	for _, baseURL := range []string{"/viewer", "file:///srv", "https://", "http://[::1"} {
		t.Run(baseURL, func(t *testing.T) {
			loader, err := NewHTTPConfigLoader(config.Loader{PublicBaseURL: baseURL}, logger.Nop())
			assert.Nil(t, loader)
			assert.ErrorIs(t, err, ErrInvalidLoaderSettings)
		})
	}
}

// ── sentinel cases ───────────────────────────────────────────────────────────

func TestHTTPConfigLoader_NoReplacement(t *testing.T) {
	srv, hits := countingServer(t, `{"replaced":true}`)

	tests := []struct {
		name      string
		base      models.Config
		configURL string
	}{
		{name: "absent base", base: nil, configURL: srv.URL},
		{name: "no dynamic block", base: models.Config{"foo": 1}, configURL: srv.URL},
		{name: "disabled", base: models.Config{dynamicConfigKey: map[string]any{"enabled": false}}, configURL: srv.URL},
		{name: "enabled not a bool", base: models.Config{dynamicConfigKey: map[string]any{"enabled": "yes"}}, configURL: srv.URL},
		{name: "no configUrl", base: dynamicBase(".*"), configURL: ""},
		{name: "regex mismatch", base: dynamicBase(`^https://configs\.example\.org/`), configURL: srv.URL},
		{name: "invalid regex", base: dynamicBase(`(`), configURL: srv.URL},
		{name: "host not allowed", base: dynamicBase(".*"), configURL: "http://internal.invalid/app-config.json"},
		{name: "protocol relative to other host", base: dynamicBase(".*"), configURL: "//internal.invalid/app-config.json"},
	}

	loader := loaderFor(t, srv)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := loader.Load(context.Background(), tt.base, pageLocation(t, tt.configURL))
			require.NoError(t, err)

			_, replaced := res.Config()
			assert.False(t, replaced)
		})
	}
	assert.Zero(t, hits.Load(), "no request must be sent when the loader is not triggered")
}

// TestHTTPConfigLoader_RelativeURLWithoutBaseURL verifies that a relative
// configUrl is refused when no public base URL is configured.
func TestHTTPConfigLoader_RelativeURLWithoutBaseURL(t *testing.T) {
	srv, hits := countingServer(t, `{"replaced":true}`)

	loader := newTestLoader(t, config.Loader{AllowedHosts: []string{hostOf(t, srv.URL)}})
	res, err := loader.Load(context.Background(), dynamicBase(".*"), pageLocation(t, "/configs/prod.json"))
	require.NoError(t, err)

	_, replaced := res.Config()
	assert.False(t, replaced)
	assert.Zero(t, hits.Load())
}

// ── replacement ──────────────────────────────────────────────────────────────

func TestHTTPConfigLoader_Replacement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/configs/site-a.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"defaultDataSourceName":"site-a","dataSources":[{"sourceName":"site-a"}]}`))
	}))
	defer srv.Close()

	res, err := loaderFor(t, srv).Load(context.Background(), dynamicBase(".*"), pageLocation(t, srv.URL+"/configs/site-a.json"))
	require.NoError(t, err)

	cfg, replaced := res.Config()
	require.True(t, replaced)
	assert.Equal(t, models.Config{
		"defaultDataSourceName": "site-a",
		"dataSources":           []any{map[string]any{"sourceName": "site-a"}},
	}, cfg)
}

// TestHTTPConfigLoader_EmptyRegexMatchesAll verifies that a missing regex
// lets every allowed configUrl through.
func TestHTTPConfigLoader_EmptyRegexMatchesAll(t *testing.T) {
	srv, _ := countingServer(t, `{"foo":"bar"}`)

	base := models.Config{dynamicConfigKey: map[string]any{"enabled": true}}
	res, err := loaderFor(t, srv).Load(context.Background(), base, pageLocation(t, srv.URL))
	require.NoError(t, err)

	cfg, replaced := res.Config()
	require.True(t, replaced)
	assert.Equal(t, "bar", cfg["foo"])
}

// TestHTTPConfigLoader_RelativeURL verifies that configUrl is resolved
// against the public base URL, not the page location.
func TestHTTPConfigLoader_RelativeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/viewer/configs/relative.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"relative":true}`))
	}))
	defer srv.Close()

	loader := newTestLoader(t, config.Loader{PublicBaseURL: srv.URL + "/viewer/"})
	res, err := loader.Load(context.Background(), dynamicBase(".*"), pageLocation(t, "configs/relative.json"))
	require.NoError(t, err)

	cfg, replaced := res.Config()
	require.True(t, replaced)
	assert.Equal(t, true, cfg["relative"])
}

// TestHTTPConfigLoader_RegexMatchesResolvedURL verifies that the regex is
// applied to the absolute URL after resolution.
func TestHTTPConfigLoader_RegexMatchesResolvedURL(t *testing.T) {
	srv, hits := countingServer(t, `{"resolved":true}`)
	loader := loaderFor(t, srv)

	res, err := loader.Load(context.Background(), dynamicBase(`^/configs/`), pageLocation(t, "/configs/prod.json"))
	require.NoError(t, err)
	_, replaced := res.Config()
	assert.False(t, replaced, "a path-only pattern never matches an absolute URL")
	assert.Zero(t, hits.Load())

	regex := "^" + regexp.QuoteMeta(srv.URL) + "/configs/"
	res, err = loader.Load(context.Background(), dynamicBase(regex), pageLocation(t, "/configs/prod.json"))
	require.NoError(t, err)
	cfg, replaced := res.Config()
	require.True(t, replaced)
	assert.Equal(t, true, cfg["resolved"])
	assert.EqualValues(t, 1, hits.Load())
}

// TestHTTPConfigLoader_IgnoresForwardedHost verifies that a spoofed
// X-Forwarded-Host cannot steer the fetch to another server.
func TestHTTPConfigLoader_IgnoresForwardedHost(t *testing.T) {
	public, publicHits := countingServer(t, `{"source":"public"}`)
	internal, internalHits := countingServer(t, `{"source":"internal"}`)

	newLocation := func(t *testing.T, configURL string) *url.URL {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "http://viewer.example.com/viewer?"+
			url.Values{configURLParam: {configURL}}.Encode(), nil)
		req.Header.Set("X-Forwarded-Host", internal.Listener.Addr().String())
		return utils.RequestLocation(req)
	}

	loader := loaderFor(t, public)

	t.Run("path pattern", func(t *testing.T) {
		res, err := loader.Load(context.Background(), dynamicBase(`^/configs/`), newLocation(t, "/configs/prod.json"))
		require.NoError(t, err)

		_, replaced := res.Config()
		assert.False(t, replaced)
	})

	t.Run("relative url resolves to public base", func(t *testing.T) {
		res, err := loader.Load(context.Background(), dynamicBase(".*"), newLocation(t, "/configs/prod.json"))
		require.NoError(t, err)

		cfg, replaced := res.Config()
		require.True(t, replaced)
		assert.Equal(t, "public", cfg["source"])
	})

	t.Run("absolute internal url", func(t *testing.T) {
		res, err := loader.Load(context.Background(), dynamicBase(".*"), newLocation(t, internal.URL+"/configs/prod.json"))
		require.NoError(t, err)

		_, replaced := res.Config()
		assert.False(t, replaced)
	})

	assert.Zero(t, internalHits.Load(), "the internal server must never be reached")
	assert.EqualValues(t, 1, publicHits.Load())
}

// TestHTTPConfigLoader_AllowedHosts verifies that an explicit allow-list
// replaces the public base URL host.
func TestHTTPConfigLoader_AllowedHosts(t *testing.T) {
	srv, hits := countingServer(t, `{"allowed":true}`)

	loader := newTestLoader(t, config.Loader{
		PublicBaseURL: "https://viewer.example.com/",
		AllowedHosts:  []string{strings.ToUpper(hostOf(t, srv.URL))},
	})

	res, err := loader.Load(context.Background(), dynamicBase(".*"), pageLocation(t, srv.URL+"/app-config.json"))
	require.NoError(t, err)
	cfg, replaced := res.Config()
	require.True(t, replaced)
	assert.Equal(t, true, cfg["allowed"])

	res, err = loader.Load(context.Background(), dynamicBase(".*"), pageLocation(t, "/app-config.json"))
	require.NoError(t, err)
	_, replaced = res.Config()
	assert.False(t, replaced, "the public base host is not allowed unless listed")
	assert.EqualValues(t, 1, hits.Load())
}

func TestHTTPConfigLoader_RedirectToDisallowedHost(t *testing.T) {
	internal, internalHits := countingServer(t, `{"source":"internal"}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, internal.URL+"/app-config.json", http.StatusFound)
	}))
	defer srv.Close()

	_, err := loaderFor(t, srv).Load(context.Background(), dynamicBase(".*"), pageLocation(t, srv.URL))
	assert.ErrorIs(t, err, ErrDynamicConfigFetch)
	assert.Zero(t, internalHits.Load())
}

func TestHTTPConfigLoader_NullDocumentIsNoReplacement(t *testing.T) {
	srv, _ := countingServer(t, `null`)

	res, err := loaderFor(t, srv).Load(context.Background(), dynamicBase(".*"), pageLocation(t, srv.URL))
	require.NoError(t, err)

	_, replaced := res.Config()
	assert.False(t, replaced)
}

// ── failures ─────────────────────────────────────────────────────────────────

func TestHTTPConfigLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr []error
	}{
		{name: "not found", status: http.StatusNotFound, body: "missing", wantErr: []error{ErrDynamicConfigFetch, ErrNotFound}},
		{name: "forbidden", status: http.StatusForbidden, wantErr: []error{ErrDynamicConfigFetch, ErrForbidden}},
		{name: "server error", status: http.StatusInternalServerError, wantErr: []error{ErrDynamicConfigFetch, ErrInternalServerError}},
		{name: "teapot", status: http.StatusTeapot, wantErr: []error{ErrDynamicConfigFetch}},
		{name: "invalid json", status: http.StatusOK, body: `{"foo":`, wantErr: []error{ErrDynamicConfigDecode}},
		{name: "json array", status: http.StatusOK, body: `[{"foo":1}]`, wantErr: []error{ErrDynamicConfigDecode}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := loaderFor(t, srv).Load(context.Background(), dynamicBase(".*"), pageLocation(t, srv.URL))
			require.Error(t, err)
			for _, target := range tt.wantErr {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestHTTPConfigLoader_BodyTooLarge(t *testing.T) {
	srv, _ := countingServer(t, `{"pad":"`+strings.Repeat("a", maxConfigBodySize)+`"}`)

	_, err := loaderFor(t, srv).Load(context.Background(), dynamicBase(".*"), pageLocation(t, srv.URL))
	assert.ErrorIs(t, err, ErrDynamicConfigFetch)
}

func TestHTTPConfigLoader_UnsupportedScheme(t *testing.T) {
	loader := newTestLoader(t, config.Loader{PublicBaseURL: "https://viewer.example.com/"})

	_, err := loader.Load(context.Background(), dynamicBase(".*"), pageLocation(t, "file:///etc/passwd"))
	assert.ErrorIs(t, err, ErrDynamicConfigFetch)
}

func TestHTTPConfigLoader_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	loader := newTestLoader(t, config.Loader{PublicBaseURL: srv.URL, RequestTimeout: 20 * time.Millisecond})
	_, err := loader.Load(context.Background(), dynamicBase(".*"), pageLocation(t, srv.URL))
	assert.ErrorIs(t, err, ErrDynamicConfigFetch)
}

func TestNopConfigLoader(t *testing.T) {
	res, err := NewNopConfigLoader().Load(context.Background(), dynamicBase(".*"), pageLocation(t, "http://x"))
	require.NoError(t, err)

	_, replaced := res.Config()
	assert.False(t, replaced)
}
