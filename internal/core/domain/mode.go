package domain

// Mode selects how references are produced for a render.
// It is implemented by ManifestMode and DevMode only.
type Mode interface {
	isMode()
}

// ManifestMode resolves references through a build manifest.
type ManifestMode struct {
	Source ManifestSource
}

// DevMode references sources on a running dev server, bypassing the manifest.
type DevMode struct {
	// ReactRefresh prepends the fast-refresh preamble.
	ReactRefresh bool
}

func (ManifestMode) isMode() {}

func (DevMode) isMode() {}
