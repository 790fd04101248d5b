// Package config provides the configuration loader for vitemap.
package config

import (
	"errors"
	iofs "io/fs"
	"net/url"
	"os"
	"path/filepath"

	"go.trai.ch/vitemap/internal/core/domain"
	"go.trai.ch/vitemap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a Loader reading DefaultFilename.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Filename: DefaultFilename, Logger: logger}
}

// Load reads the configuration from the given working directory.
// A missing file yields the defaults.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			l.Logger.Info("no configuration file found, using defaults", "path", path)
			return Defaults(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Defaults returns the configuration used when no file is present.
func Defaults() *domain.Config {
	return &domain.Config{
		Manifest:  DefaultManifest,
		DevServer: DefaultDevServer,
		HotFile:   DefaultHotFile,
	}
}

// Parse decodes a configuration document, expanding environment references first.
func Parse(data []byte) (*domain.Config, error) {
	var file File
	if err := yaml.Unmarshal([]byte(ExpandEnv(string(data))), &file); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrInvalidConfig, err), "failed to parse config file")
	}

	cfg := Defaults()
	if file.Manifest != "" {
		cfg.Manifest = file.Manifest
	}
	if file.DevServer != "" {
		cfg.DevServer = file.DevServer
	}
	if file.HotFile != "" {
		cfg.HotFile = file.HotFile
	}
	cfg.BaseURL = file.BaseURL
	if file.ReactRefresh != nil {
		cfg.ReactRefresh = *file.ReactRefresh
	}
	if file.CacheBust != nil {
		cfg.CacheBust = *file.CacheBust
	}

	if err := validateOrigin("dev_server", cfg.DevServer); err != nil {
		return nil, err
	}
	if cfg.BaseURL != "" {
		if err := validateOrigin("base_url", cfg.BaseURL); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// validateOrigin accepts absolute http(s) URLs and root-relative paths.
func validateOrigin(field, value string) error {
	u, err := url.Parse(value)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return nil
	}
	if err == nil && u.Scheme == "" && u.Host == "" && len(value) > 0 && value[0] == '/' {
		return nil
	}
	invalid := zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "expected an http(s) URL or a path starting with /"), "field", field)
	return zerr.With(invalid, "value", value)
}
