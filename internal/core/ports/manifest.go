// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/vitemap/internal/core/domain"
)

// ManifestLoader fetches the raw bytes of a manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Load returns the document stored at location.
	Load(ctx context.Context, location string) ([]byte, error)
}

// ManifestParser turns raw manifest bytes into a domain.Manifest.
//
// Implementations must be pure: parsing the same bytes twice yields
// equivalent manifests and has no side effects.
type ManifestParser interface {
	Parse(data []byte) (*domain.Manifest, error)
}

// ManifestCache resolves manifest sources to parsed manifests and keeps them
// for the lifetime of the process.
type ManifestCache interface {
	// Resolve returns the manifest for src, parsing it on first use.
	// A source that already carries a parsed manifest is returned unchanged.
	Resolve(ctx context.Context, src domain.ManifestSource) (*domain.Manifest, error)

	// Invalidate drops the cached manifest for src. It is a no-op if nothing is cached.
	Invalidate(src domain.ManifestSource)
}
