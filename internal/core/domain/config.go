package domain

// Config holds the settings used to render asset references.
type Config struct {
	// Manifest is the location of the build manifest.
	Manifest string
	// BaseURL is prepended to manifest asset paths, e.g. a CDN host.
	BaseURL string
	// DevServer is the origin of the dev server.
	DevServer string
	// HotFile is the file whose presence signals a running dev server.
	HotFile      string
	ReactRefresh bool
	CacheBust    bool
}
