// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/viewer-shell/internal/config"
	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/internal/utils"
	"github.com/MKhiriev/viewer-shell/models"
	"github.com/go-resty/resty/v2"
)

const (
	// dynamicConfigKey is the base configuration key that opts a deployment
	// into dynamic configuration.
	dynamicConfigKey = "dangerouslyUseDynamicConfig"
	// configURLParam is the query parameter naming the document to fetch.
	configURLParam = "configUrl"
	// maxConfigBodySize caps the size of a fetched configuration document.
	maxConfigBodySize = 1 << 20
	// maxConfigRedirects caps the redirects followed for a single fetch.
	maxConfigRedirects = 5
)

var errNoBaseURL = errors.New("relative config url without a public base url")

// dynamicConfigSettings is the shape of the dangerouslyUseDynamicConfig
// block of the base configuration.
type dynamicConfigSettings struct {
	Enabled bool
	// Regex restricts which resolved config URLs may be fetched. An empty
	// regex matches every URL.
	Regex string
}

type httpConfigLoader struct {
	client *utils.HTTPClient

	// baseURL is nil when no public base URL is configured; relative
	// configUrl values are then refused.
	baseURL      *url.URL
	allowedHosts map[string]struct{}

	logger *logger.Logger
}

// NewHTTPConfigLoader constructs a [ConfigLoader] that fetches a replacement
// configuration over HTTP.
//
// A fetch happens only when all of the following hold:
//   - the base configuration has dangerouslyUseDynamicConfig.enabled = true;
//   - the page location carries a non-empty configUrl query parameter;
//   - configUrl, resolved against cfg.PublicBaseURL, matches
//     dangerouslyUseDynamicConfig.regex;
//   - the resolved host is listed in cfg.AllowedHosts, or equals the host of
//     cfg.PublicBaseURL when the list is empty.
//
// The page location only supplies the query; its scheme and host come from
// request headers and never take part in resolution. Otherwise Load returns
// [models.NoReplacement]. Every fetch is bounded by cfg.RequestTimeout and
// bodies larger than 1 MiB are rejected.
func NewHTTPConfigLoader(cfg config.Loader, logger *logger.Logger) (ConfigLoader, error) {
	var baseURL *url.URL
	if cfg.PublicBaseURL != "" {
		u, err := url.Parse(cfg.PublicBaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLoaderSettings, err)
		}
		if !isHTTPURL(u) {
			return nil, fmt.Errorf("%w: public base url must be an absolute http(s) url, got %q", ErrInvalidLoaderSettings, cfg.PublicBaseURL)
		}
		baseURL = u
	}

	allowedHosts := make(map[string]struct{}, len(cfg.AllowedHosts))
	for _, host := range cfg.AllowedHosts {
		allowedHosts[strings.ToLower(host)] = struct{}{}
	}
	if len(allowedHosts) == 0 && baseURL != nil {
		allowedHosts[strings.ToLower(baseURL.Host)] = struct{}{}
	}

	h := &httpConfigLoader{
		client:       utils.NewHTTPClient(),
		baseURL:      baseURL,
		allowedHosts: allowedHosts,
		logger:       logger,
	}
	h.client.
		SetTimeout(cfg.RequestTimeout).
		SetResponseBodyLimit(maxConfigBodySize).
		SetRedirectPolicy(
			resty.FlexibleRedirectPolicy(maxConfigRedirects),
			resty.RedirectPolicyFunc(func(req *http.Request, _ []*http.Request) error {
				if !h.hostAllowed(req.URL) {
					return fmt.Errorf("redirect to host %q is not allowed", req.URL.Host)
				}
				return nil
			}),
		).
		SetHeader("Accept", "application/json")

	return h, nil
}

// Load implements [ConfigLoader].
func (h *httpConfigLoader) Load(ctx context.Context, base models.Config, location *url.URL) (models.LoadResult, error) {
	log := logger.FromContextOr(ctx, h.logger)

	settings, ok := readDynamicConfigSettings(base)
	if !ok || !settings.Enabled {
		return models.NoReplacement(), nil
	}

	rawConfigURL := location.Query().Get(configURLParam)
	if rawConfigURL == "" {
		return models.NoReplacement(), nil
	}

	re, err := regexp.Compile(settings.Regex)
	if err != nil {
		log.Warn().Err(err).Str("regex", settings.Regex).Msg("invalid dynamic config regex, keeping base config")
		return models.NoReplacement(), nil
	}

	configURL, err := h.resolveConfigURL(rawConfigURL)
	if errors.Is(err, errNoBaseURL) {
		log.Warn().Str("config_url", rawConfigURL).Msg("relative config url without a public base url, keeping base config")
		return models.NoReplacement(), nil
	}
	if err != nil {
		return models.LoadResult{}, fmt.Errorf("%w: %w", ErrDynamicConfigFetch, err)
	}
	if !re.MatchString(configURL.String()) {
		log.Warn().Str("config_url", configURL.String()).Msg("config url does not match allowed pattern, keeping base config")
		return models.NoReplacement(), nil
	}
	if !h.hostAllowed(configURL) {
		log.Warn().Str("config_url", configURL.String()).Str("host", configURL.Host).Msg("config url host is not allowed, keeping base config")
		return models.NoReplacement(), nil
	}

	log.Info().Str("config_url", configURL.String()).Msg("fetching dynamic config")
	resp, err := h.client.R().
		SetContext(ctx).
		Get(configURL.String())
	if err != nil {
		return models.LoadResult{}, fmt.Errorf("%w: %w", ErrDynamicConfigFetch, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoadResult{}, fmt.Errorf("%w: %w", ErrDynamicConfigFetch, err)
	}

	var doc any
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.LoadResult{}, fmt.Errorf("%w: %w", ErrDynamicConfigDecode, err)
	}

	switch v := doc.(type) {
	case nil:
		return models.NoReplacement(), nil
	case map[string]any:
		return models.Replacement(models.Config(v)), nil
	default:
		return models.LoadResult{}, fmt.Errorf("%w: expected a JSON object, got %T", ErrDynamicConfigDecode, doc)
	}
}

func readDynamicConfigSettings(base models.Config) (dynamicConfigSettings, bool) {
	raw, ok := base[dynamicConfigKey].(map[string]any)
	if !ok {
		return dynamicConfigSettings{}, false
	}

	enabled, _ := raw["enabled"].(bool)
	regex, _ := raw["regex"].(string)

	return dynamicConfigSettings{Enabled: enabled, Regex: regex}, true
}

// resolveConfigURL resolves rawConfigURL against the configured public base
// URL. It returns errNoBaseURL when rawConfigURL is relative and no base
// URL is configured.
func (h *httpConfigLoader) resolveConfigURL(rawConfigURL string) (*url.URL, error) {
	ref, err := url.Parse(rawConfigURL)
	if err != nil {
		return nil, fmt.Errorf("invalid config url: %w", err)
	}

	resolved := ref
	if !ref.IsAbs() {
		if h.baseURL == nil {
			return nil, errNoBaseURL
		}
		resolved = h.baseURL.ResolveReference(ref)
	}
	if !isHTTPURL(resolved) {
		return nil, fmt.Errorf("config url must be an absolute http or https url, got %q", resolved.String())
	}

	return resolved, nil
}

// hostAllowed compares the host[:port] of u with the allow-list, ignoring
// case.
func (h *httpConfigLoader) hostAllowed(u *url.URL) bool {
	_, ok := h.allowedHosts[strings.ToLower(u.Host)]
	return ok
}

func isHTTPURL(u *url.URL) bool {
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
