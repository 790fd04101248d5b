package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Manifest maps entry keys to the chunks emitted by the build.
type Manifest struct {
	chunks map[InternedString]Chunk
	digest string
}

// NewManifest creates a new empty Manifest.
func NewManifest() *Manifest {
	return &Manifest{
		chunks: make(map[InternedString]Chunk),
	}
}

// AddChunk adds a chunk to the manifest.
// It returns an error if a chunk with the same key already exists.
func (m *Manifest) AddChunk(c *Chunk) error {
	if _, exists := m.chunks[c.Key]; exists {
		return zerr.With(zerr.Wrap(ErrChunkAlreadyExists, "cannot add chunk"), "key", c.Key.String())
	}
	m.chunks[c.Key] = *c
	return nil
}

// Chunk returns the chunk stored under key.
func (m *Manifest) Chunk(key string) (Chunk, bool) {
	c, ok := m.chunks[NewInternedString(key)]
	return c, ok
}

// Len returns the number of chunks in the manifest.
func (m *Manifest) Len() int {
	return len(m.chunks)
}

// Keys returns the chunk keys in sorted order.
func (m *Manifest) Keys() []string {
	keys := make([]string, 0, len(m.chunks))
	for k := range m.chunks {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	return keys
}

// Entries yields the chunks flagged as entry points, sorted by key.
func (m *Manifest) Entries() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for _, key := range m.Keys() {
			c := m.chunks[NewInternedString(key)]
			if !c.IsEntry {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Digest returns the content digest of the document the manifest was parsed from.
// It is empty for manifests built in memory.
func (m *Manifest) Digest() string {
	return m.digest
}

// SetDigest records the content digest of the source document.
func (m *Manifest) SetDigest(digest string) {
	m.digest = digest
}

// Validate checks that every static and dynamic import refers to a chunk in the manifest.
func (m *Manifest) Validate() error {
	for _, key := range m.Keys() {
		c := m.chunks[NewInternedString(key)]
		for _, imp := range slices.Concat(c.Imports, c.DynamicImports) {
			if _, ok := m.chunks[imp]; !ok {
				return unknownImport(c.Key, imp)
			}
		}
	}
	return nil
}

func unknownImport(importer, imp InternedString) error {
	err := zerr.With(zerr.Wrap(ErrUnknownImport, "manifest references a missing chunk"), "import", imp.String())
	return zerr.With(err, "importer", importer.String())
}
