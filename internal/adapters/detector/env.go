// Package detector reports whether a dev server is active for the current deployment.
package detector

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/vitemap/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvVar forces dev mode on ("true", "1") or off ("false", "0").
const EnvVar = "VITEMAP_DEV"

var _ ports.DevServerDetector = (*Detector)(nil)

// Detector combines an environment override with a hot file written by the dev server.
type Detector struct{}

// New creates a Detector.
func New() *Detector {
	return &Detector{}
}

// Detect checks EnvVar first, then hotFile. When the hot file is present and
// not empty, its first line is returned as the dev server origin.
func (d *Detector) Detect(hotFile string) (bool, string, error) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvVar))) {
	case "true", "1":
		return true, "", nil
	case "false", "0":
		return false, "", nil
	}

	if hotFile == "" {
		return false, "", nil
	}

	path := filepath.Clean(hotFile)
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from configuration
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, "", nil
		}
		return false, "", zerr.With(zerr.Wrap(err, "failed to read hot file"), "path", path)
	}

	origin, _, _ := strings.Cut(strings.TrimSpace(string(data)), "\n")
	return true, strings.TrimSpace(origin), nil
}

// ResolveMode applies a user override flag to the detected state.
// userFlag should be one of: "auto", "dev", "build", or empty.
func ResolveMode(detected bool, userFlag string) bool {
	switch userFlag {
	case "dev":
		return true
	case "build", "manifest":
		return false
	default:
		return detected
	}
}
