package domain

import "go.trai.ch/zerr"

// AssetRole describes where a path sits in the load order of a resolved entry.
type AssetRole int

const (
	// RoleStylesheet marks a stylesheet bundled with the entry or one of its imports.
	RoleStylesheet AssetRole = iota
	// RoleEntry marks the primary file of the requested entry.
	RoleEntry
	// RolePreload marks the primary file of a transitively imported chunk.
	RolePreload
)

// AssetPath is a manifest path tagged with its role.
type AssetPath struct {
	Path string
	Role AssetRole
}

// Resolution is the entry chunk together with its static import closure.
type Resolution struct {
	Entry Chunk
	// Imports holds every transitively imported chunk in first-discovery order.
	// The entry itself is never included.
	Imports []Chunk
}

// Resolve computes the static import closure of entry.
// Each reachable chunk is visited once, so cyclic imports terminate. A chunk
// always appears before any of its own imports.
func (m *Manifest) Resolve(entry string) (*Resolution, error) {
	root, ok := m.chunks[NewInternedString(entry)]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrUnknownEntry, "cannot resolve entry"), "entry", entry)
	}

	visited := map[InternedString]bool{root.Key: true}
	var imports []Chunk

	var visit func(c *Chunk) error
	visit = func(c *Chunk) error {
		for _, key := range c.Imports {
			if visited[key] {
				continue
			}
			dep, exists := m.chunks[key]
			if !exists {
				return unknownImport(c.Key, key)
			}
			visited[key] = true
			imports = append(imports, dep)
			if err := visit(&dep); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(&root); err != nil {
		return nil, err
	}

	return &Resolution{Entry: root, Imports: imports}, nil
}

// Paths returns the asset paths of the resolution in load order: the entry's
// stylesheets, the imported stylesheets, the entry file, then the imported files.
// A path is only reported the first time it occurs.
func (r *Resolution) Paths() []AssetPath {
	seen := make(map[InternedString]bool)
	var out []AssetPath

	add := func(p InternedString, role AssetRole) {
		if p.String() == "" || seen[p] {
			return
		}
		seen[p] = true
		out = append(out, AssetPath{Path: p.String(), Role: role})
	}

	for _, css := range r.Entry.CSS {
		add(css, RoleStylesheet)
	}
	for _, c := range r.Imports {
		for _, css := range c.CSS {
			add(css, RoleStylesheet)
		}
	}
	add(r.Entry.File, RoleEntry)
	for _, c := range r.Imports {
		add(c.File, RolePreload)
	}

	return out
}
