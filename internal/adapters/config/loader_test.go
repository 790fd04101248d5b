package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vitemap/internal/adapters/config"
	"go.trai.ch/vitemap/internal/core/domain"
	"go.trai.ch/vitemap/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, config.DefaultFilename), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return tmpDir
}

func TestLoad_Success(t *testing.T) {
	dir := writeConfig(t, `
version: "1"
manifest: public/build/manifest.json
base_url: https://cdn.example.com/build
dev_server: http://localhost:3000
hot_file: storage/hot
react_refresh: true
cache_bust: true
`)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, &domain.Config{
		Manifest:     "public/build/manifest.json",
		BaseURL:      "https://cdn.example.com/build",
		DevServer:    "http://localhost:3000",
		HotFile:      "storage/hot",
		ReactRefresh: true,
		CacheBust:    true,
	}, cfg)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info("no configuration file found, using defaults", gomock.Any()).Times(1)

	cfg, err := config.NewLoader(logger).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, `base_url: /static`)

	ctrl := gomock.NewController(t)
	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultManifest, cfg.Manifest)
	assert.Equal(t, config.DefaultDevServer, cfg.DevServer)
	assert.Equal(t, config.DefaultHotFile, cfg.HotFile)
	assert.Equal(t, "/static", cfg.BaseURL)
	assert.False(t, cfg.ReactRefresh)
	assert.False(t, cfg.CacheBust)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("VITEMAP_TEST_CDN", "https://assets.example.org")

	dir := writeConfig(t, `
base_url: ${VITEMAP_TEST_CDN}
dev_server: ${VITEMAP_TEST_UNSET:-http://127.0.0.1:5174}
react_refresh: ${VITEMAP_TEST_UNSET:-true}
`)

	ctrl := gomock.NewController(t)
	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://assets.example.org", cfg.BaseURL)
	assert.Equal(t, "http://127.0.0.1:5174", cfg.DevServer)
	assert.True(t, cfg.ReactRefresh)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "manifest: [unterminated")

	ctrl := gomock.NewController(t)
	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestLoad_InvalidOrigins(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "dev server without scheme", content: "dev_server: localhost:5173", field: "dev_server"},
		{name: "relative base url", content: "base_url: static", field: "base_url"},
		{name: "unsupported scheme", content: "base_url: ftp://cdn.example.com", field: "base_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.content)

			ctrl := gomock.NewController(t)
			_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, tt.field, zErr.Metadata()["field"])
		})
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("VITEMAP_TEST_SET", "value")
	t.Setenv("VITEMAP_TEST_EMPTY", "")

	tests := []struct {
		input    string
		expected string
	}{
		{input: "${VITEMAP_TEST_SET}", expected: "value"},
		{input: "${VITEMAP_TEST_EMPTY:-fallback}", expected: "fallback"},
		{input: "${VITEMAP_TEST_MISSING}", expected: ""},
		{input: "a/${VITEMAP_TEST_SET}/b", expected: "a/value/b"},
		{input: "$VITEMAP_TEST_SET", expected: "$VITEMAP_TEST_SET"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, config.ExpandEnv(tt.input))
		})
	}
}
