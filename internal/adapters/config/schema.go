package config

// File represents the structure of the vitemap.yaml configuration file.
type File struct {
	Version      string `yaml:"version"`
	Manifest     string `yaml:"manifest"`
	BaseURL      string `yaml:"base_url"`
	DevServer    string `yaml:"dev_server"`
	HotFile      string `yaml:"hot_file"`
	ReactRefresh *bool  `yaml:"react_refresh"`
	CacheBust    *bool  `yaml:"cache_bust"`
}

const (
	// DefaultFilename is the configuration file looked up in the working directory.
	DefaultFilename = "vitemap.yaml"
	// DefaultManifest is where Vite 5 writes its manifest with build.manifest enabled.
	DefaultManifest = "dist/.vite/manifest.json"
	// DefaultDevServer is the origin of a Vite dev server started without options.
	DefaultDevServer = "http://localhost:5173"
	// DefaultHotFile is the file a dev server plugin writes while it runs.
	DefaultHotFile = "public/hot"
)
