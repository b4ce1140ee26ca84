package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-index SPA index.html path
//	-static SPA static assets directory
//	-base-config base viewer config path (app-config.json / app-config.js)
//	-plugins plugin manifest path
//	-loader-timeout dynamic config fetch timeout
//	-loader-enabled enable the dynamic config loader
//	-loader-base-url public base URL relative configUrl values resolve against
//	-loader-allowed-hosts comma separated hosts a configUrl may point at
//	-c/-config json file path with configs
//	-version service version
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var indexPath string
	var staticDir string
	var baseConfigPath string
	var pluginManifestPath string
	var loaderTimeout time.Duration
	var loaderEnabled bool
	var loaderBaseURL string
	var loaderAllowedHosts string
	var jsonConfigPath string
	var version string

	fs := flag.NewFlagSet("viewer-shell", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&indexPath, "index", "", "SPA index.html path")
	fs.StringVar(&staticDir, "static", "", "SPA static assets directory")
	fs.StringVar(&baseConfigPath, "base-config", "", "Base viewer config path")
	fs.StringVar(&pluginManifestPath, "plugins", "", "Plugin manifest path")
	fs.DurationVar(&loaderTimeout, "loader-timeout", 0, "Dynamic config fetch timeout (e.g., 10s)")
	fs.BoolVar(&loaderEnabled, "loader-enabled", false, "Enable the dynamic config loader")
	fs.StringVar(&loaderBaseURL, "loader-base-url", "", "Public base URL for relative configUrl values")
	fs.StringVar(&loaderAllowedHosts, "loader-allowed-hosts", "", "Comma separated hosts a configUrl may point at")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Service version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Shell: Shell{
			IndexPath:          indexPath,
			StaticDir:          staticDir,
			BaseConfigPath:     baseConfigPath,
			PluginManifestPath: pluginManifestPath,
		},
		Loader: Loader{
			Enabled:        loaderEnabled,
			PublicBaseURL:  loaderBaseURL,
			AllowedHosts:   splitList(loaderAllowedHosts),
			RequestTimeout: loaderTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitList splits a comma separated flag value, dropping empty items.
// An empty value yields nil so it does not override other sources.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
