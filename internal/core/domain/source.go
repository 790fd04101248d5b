package domain

// ManifestSource identifies where a manifest comes from.
// A source either names a location to be loaded and cached, or carries a
// manifest the caller has already parsed, which is used as-is.
type ManifestSource struct {
	Location string
	Parsed   *Manifest
}

// SourceAt returns a source identified by location.
func SourceAt(location string) ManifestSource {
	return ManifestSource{Location: location}
}

// SourceOf returns a source wrapping an already parsed manifest.
func SourceOf(m *Manifest) ManifestSource {
	return ManifestSource{Parsed: m}
}

// IsParsed reports whether the source carries its manifest directly.
func (s ManifestSource) IsParsed() bool {
	return s.Parsed != nil
}
