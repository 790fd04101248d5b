package domain

// ReferenceKind identifies how a host page should reference an asset.
type ReferenceKind string

const (
	// KindScript is an executable module script.
	KindScript ReferenceKind = "script"
	// KindStylesheet is a stylesheet link.
	KindStylesheet ReferenceKind = "stylesheet"
	// KindModulePreload is a modulepreload hint for a script that is fetched but not executed.
	KindModulePreload ReferenceKind = "modulepreload-script"
	// KindInlineModule is an inline module script whose body is carried in Content.
	KindInlineModule ReferenceKind = "inline-module"
)

// Reference is a single asset reference produced for a render.
type Reference struct {
	Kind ReferenceKind
	URL  string
	// Content is only set for KindInlineModule.
	Content string
}
