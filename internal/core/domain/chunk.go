package domain

// Chunk represents one compiled output unit described by the manifest.
// It is addressed by Key, not by File.
type Chunk struct {
	Key            InternedString
	File           InternedString
	Src            InternedString
	CSS            []InternedString
	Imports        []InternedString
	DynamicImports []InternedString
	Assets         []InternedString
	IsEntry        bool
	IsDynamicEntry bool
}
