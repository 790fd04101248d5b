// Package assets turns manifest paths and dev entry names into asset references.
package assets

import (
	"path"
	"strings"

	"go.trai.ch/vitemap/internal/core/domain"
)

// CacheBustQuery is appended to served paths when cache busting is requested.
const CacheBustQuery = "?revalidate=1"

// URLTransform maps a served path to the URL placed in the page.
type URLTransform func(path string) string

// Identity is the default URLTransform.
func Identity(p string) string {
	return p
}

// PrefixURL returns a transform that roots served paths under base, e.g. a CDN host.
func PrefixURL(base string) URLTransform {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return Identity
	}
	return func(p string) string {
		return base + "/" + strings.TrimPrefix(p, "/")
	}
}

// DevServerURL returns a transform that points paths at a dev server origin.
func DevServerURL(origin string) URLTransform {
	return PrefixURL(origin)
}

// BuildOptions configures Build.
type BuildOptions struct {
	Transform URLTransform
	CacheBust bool
}

var scriptExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".mjs": true,
	".mts": true,
	".ts":  true,
	".tsx": true,
}

// Classify returns the reference kind for p based on its extension.
// It reports false for extensions that produce no reference.
func Classify(p string) (domain.ReferenceKind, bool) {
	ext := strings.ToLower(path.Ext(stripQuery(p)))
	switch {
	case scriptExtensions[ext]:
		return domain.KindScript, true
	case ext == ".css":
		return domain.KindStylesheet, true
	default:
		return "", false
	}
}

// Build converts a manifest path into a reference. Scripts in the preload role
// become modulepreload hints. Paths with unrecognised extensions are dropped.
func Build(p string, role domain.AssetRole, opts BuildOptions) (domain.Reference, bool) {
	kind, ok := Classify(p)
	if !ok {
		return domain.Reference{}, false
	}
	if kind == domain.KindScript && role == domain.RolePreload {
		kind = domain.KindModulePreload
	}

	served := "/" + strings.TrimLeft(p, "/")
	if opts.CacheBust {
		served += CacheBustQuery
	}

	transform := opts.Transform
	if transform == nil {
		transform = Identity
	}

	return domain.Reference{Kind: kind, URL: transform(served)}, true
}

// BuildAll converts the paths of a resolution, preserving their order.
func BuildAll(paths []domain.AssetPath, opts BuildOptions) []domain.Reference {
	refs := make([]domain.Reference, 0, len(paths))
	for _, p := range paths {
		if ref, ok := Build(p.Path, p.Role, opts); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func stripQuery(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return p[:i]
	}
	return p
}
