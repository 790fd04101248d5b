// Package cache implements the process-wide manifest cache.
package cache

import (
	"context"
	"sync"

	"go.trai.ch/vitemap/internal/core/domain"
	"go.trai.ch/vitemap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestCache = (*Store)(nil)

// Store implements ports.ManifestCache with an in-memory map keyed by source location.
//
// Entries never expire; they are only removed by Invalidate. Parsing happens
// outside the lock, so two goroutines missing the same location at once may
// both parse it. The last write wins, which is harmless because parsing is pure.
type Store struct {
	loader ports.ManifestLoader
	parser ports.ManifestParser
	logger ports.Logger

	mu      sync.RWMutex
	entries map[domain.InternedString]*domain.Manifest
}

// NewStore creates an empty Store.
func NewStore(loader ports.ManifestLoader, parser ports.ManifestParser, logger ports.Logger) *Store {
	return &Store{
		loader:  loader,
		parser:  parser,
		logger:  logger,
		entries: make(map[domain.InternedString]*domain.Manifest),
	}
}

// Resolve returns the manifest for src, loading and parsing it on first use.
func (s *Store) Resolve(ctx context.Context, src domain.ManifestSource) (*domain.Manifest, error) {
	if src.IsParsed() {
		return src.Parsed, nil
	}

	key := domain.NewInternedString(src.Location)

	s.mu.RLock()
	m, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return m, nil
	}

	data, err := s.loader.Load(ctx, src.Location)
	if err != nil {
		return nil, err
	}

	m, err = s.parser.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "location", src.Location)
	}

	s.mu.Lock()
	s.entries[key] = m
	s.mu.Unlock()

	s.logger.Info("manifest parsed", "location", src.Location, "digest", m.Digest(), "chunks", m.Len(), "cached", s.Len())
	return m, nil
}

// Invalidate drops the cached manifest for src so the next Resolve reparses it.
func (s *Store) Invalidate(src domain.ManifestSource) {
	if src.IsParsed() {
		return
	}

	key := domain.NewInternedString(src.Location)

	s.mu.Lock()
	_, ok := s.entries[key]
	delete(s.entries, key)
	s.mu.Unlock()

	if ok {
		s.logger.Info("manifest invalidated", "location", src.Location, "cached", s.Len())
	}
}

// Len returns the number of cached manifests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
