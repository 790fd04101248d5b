// Package fs implements file system adapters for manifests and emitted assets.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/vitemap/internal/core/domain"
	"go.trai.ch/vitemap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader on top of an fs.FS.
// Relative locations are read from the file system; absolute locations are
// read from the host file system directly. Locations escaping the root
// ("../web/manifest.json") are joined against the root directory when the
// Loader was created with NewLoader.
type Loader struct {
	fsys iofs.FS
	root string
}

// NewLoader creates a Loader rooted at dir on the host file system.
func NewLoader(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir), root: dir}
}

// NewFSLoader creates a Loader reading from fsys, e.g. an embed.FS holding the build output.
func NewFSLoader(fsys iofs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load returns the bytes stored at location.
func (l *Loader) Load(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	name := cleanLocation(location)
	switch {
	case filepath.IsAbs(location):
		data, err = os.ReadFile(location) //nolint:gosec // Location is provided by trusted configuration
	case !iofs.ValidPath(name) && l.root != "":
		data, err = os.ReadFile(filepath.Join(l.root, filepath.FromSlash(name))) //nolint:gosec // Location is provided by trusted configuration
	default:
		data, err = iofs.ReadFile(l.fsys, name)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrManifestLoadFailed, err), "cannot read manifest"), "location", location)
	}
	return data, nil
}

// cleanLocation converts location into the slash separated, unrooted form io/fs expects.
func cleanLocation(location string) string {
	p := path.Clean(filepath.ToSlash(location))
	return strings.TrimPrefix(p, "./")
}
