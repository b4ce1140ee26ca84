package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Shell struct {
		IndexPath          string `json:"index_path"`
		StaticDir          string `json:"static_dir"`
		BaseConfigPath     string `json:"base_config_path"`
		PluginManifestPath string `json:"plugin_manifest_path"`
	} `json:"shell,omitempty"`

	Loader struct {
		Enabled        bool     `json:"enabled"`
		PublicBaseURL  string   `json:"public_base_url"`
		AllowedHosts   []string `json:"allowed_hosts"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"loader,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:    jsonCfg.App.Name,
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Shell: Shell{
			IndexPath:          jsonCfg.Shell.IndexPath,
			StaticDir:          jsonCfg.Shell.StaticDir,
			BaseConfigPath:     jsonCfg.Shell.BaseConfigPath,
			PluginManifestPath: jsonCfg.Shell.PluginManifestPath,
		},
		Loader: Loader{
			Enabled:        jsonCfg.Loader.Enabled,
			PublicBaseURL:  jsonCfg.Loader.PublicBaseURL,
			AllowedHosts:   jsonCfg.Loader.AllowedHosts,
			RequestTimeout: time.Duration(jsonCfg.Loader.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
