package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedManifest is returned when the manifest document does not have the expected structure.
	ErrMalformedManifest = zerr.New("malformed manifest")

	// ErrUnknownEntry is returned when a requested entry is not a key of the manifest.
	ErrUnknownEntry = zerr.New("unknown entry")

	// ErrUnknownImport is returned when a chunk imports a key that is not present in the manifest.
	ErrUnknownImport = zerr.New("unknown import")

	// ErrChunkAlreadyExists is returned when attempting to add a chunk with a key that already exists.
	ErrChunkAlreadyExists = zerr.New("chunk already exists")

	// ErrNoEntriesSpecified is returned when a render is requested without any entry names.
	ErrNoEntriesSpecified = zerr.New("no entries specified")

	// ErrManifestLoadFailed is returned when the manifest bytes cannot be loaded.
	ErrManifestLoadFailed = zerr.New("failed to load manifest")

	// ErrUnsupportedMode is returned when a render is requested with a mode that is neither manifest nor dev.
	ErrUnsupportedMode = zerr.New("unsupported render mode")

	// ErrMissingOutputs is returned when files named by the manifest are absent from the output directory.
	ErrMissingOutputs = zerr.New("manifest outputs missing")

	// ErrInvalidConfig is returned when the configuration file cannot be used.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
