// Package manifest decodes Vite build manifests.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vitemap/internal/core/domain"
	"go.trai.ch/vitemap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestParser = (*Parser)(nil)

// Parser implements ports.ManifestParser for the JSON manifest written by Vite.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ChunkDTO is a single manifest entry as it appears on disk.
type ChunkDTO struct {
	File           *string  `json:"file"`
	Src            string   `json:"src"`
	CSS            []string `json:"css"`
	Imports        []string `json:"imports"`
	DynamicImports []string `json:"dynamicImports"`
	Assets         []string `json:"assets"`
	IsEntry        bool     `json:"isEntry"`
	IsDynamicEntry bool     `json:"isDynamicEntry"`
}

// Parse decodes data into a domain.Manifest.
// The document must be an object whose values are objects carrying a file field.
func (p *Parser) Parse(data []byte) (*domain.Manifest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, zerr.Wrap(domain.ErrMalformedManifest, "manifest is not an object")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrMalformedManifest, err), "failed to decode manifest")
	}

	m := domain.NewManifest()
	for key, value := range raw {
		c, err := decodeChunk(key, value)
		if err != nil {
			return nil, err
		}
		if err := m.AddChunk(c); err != nil {
			return nil, err
		}
	}

	m.SetDigest(fmt.Sprintf("%016x", xxhash.Sum64(trimmed)))
	return m, nil
}

func decodeChunk(key string, value json.RawMessage) (*domain.Chunk, error) {
	body := bytes.TrimSpace(value)
	if len(body) == 0 || body[0] != '{' {
		return nil, malformedEntry(key, "entry is not an object")
	}

	var dto ChunkDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrMalformedManifest, err), "failed to decode entry"), "key", key)
	}
	if dto.File == nil {
		return nil, malformedEntry(key, "entry has no file")
	}

	return &domain.Chunk{
		Key:            domain.NewInternedString(key),
		File:           domain.NewInternedString(*dto.File),
		Src:            domain.NewInternedString(dto.Src),
		CSS:            domain.NewInternedStrings(dto.CSS),
		Imports:        domain.NewInternedStrings(dto.Imports),
		DynamicImports: domain.NewInternedStrings(dto.DynamicImports),
		Assets:         domain.NewInternedStrings(dto.Assets),
		IsEntry:        dto.IsEntry,
		IsDynamicEntry: dto.IsDynamicEntry,
	}, nil
}

func malformedEntry(key, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrMalformedManifest, reason), "key", key)
}
