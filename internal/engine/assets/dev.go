package assets

import (
	"fmt"

	"go.trai.ch/vitemap/internal/core/domain"
)

const (
	// ClientPath is the dev server's HMR client.
	ClientPath = "/@vite/client"
	// ReactRefreshPath is the React fast-refresh runtime served by the dev server.
	ReactRefreshPath = "/@react-refresh"
)

const reactRefreshPreamble = `import RefreshRuntime from %q
RefreshRuntime.injectIntoGlobalHook(window)
window.$RefreshReg$ = () => {}
window.$RefreshSig$ = () => (type) => type
window.__vite_plugin_react_preamble_installed__ = true
`

// DevReferences returns references for names served directly by a dev server.
// The client bootstrap always comes first, preceded by the fast-refresh
// preamble when reactRefresh is set. Names keep the caller's order and go
// through transform verbatim; they are never cache busted.
func DevReferences(names []string, transform URLTransform, reactRefresh bool) []domain.Reference {
	if transform == nil {
		transform = Identity
	}

	refs := make([]domain.Reference, 0, len(names)+2)
	if reactRefresh {
		refs = append(refs, domain.Reference{
			Kind:    domain.KindInlineModule,
			Content: fmt.Sprintf(reactRefreshPreamble, transform(ReactRefreshPath)),
		})
	}
	refs = append(refs, domain.Reference{Kind: domain.KindScript, URL: transform(ClientPath)})

	for _, name := range names {
		kind, ok := Classify(name)
		if !ok {
			continue
		}
		refs = append(refs, domain.Reference{Kind: kind, URL: transform(name)})
	}
	return refs
}
