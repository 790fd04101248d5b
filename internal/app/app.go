// Package app implements the application layer for vitemap.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/vitemap/internal/adapters/detector"
	"go.trai.ch/vitemap/internal/core/domain"
	"go.trai.ch/vitemap/internal/core/ports"
	"go.trai.ch/vitemap/internal/engine/assets"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	cache        ports.ManifestCache
	configLoader ports.ConfigLoader
	detector     ports.DevServerDetector
	verifier     ports.Verifier
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	cache ports.ManifestCache,
	loader ports.ConfigLoader,
	det ports.DevServerDetector,
	verifier ports.Verifier,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		cache:        cache,
		configLoader: loader,
		detector:     det,
		verifier:     verifier,
		tracer:       tracer,
		logger:       log,
	}
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	Mode         domain.Mode
	URLTransform assets.URLTransform
	CacheBust    bool
}

// Render returns the ordered asset references for names.
//
// In manifest mode the names are resolved against the manifest and merged:
// every stylesheet first, then the entry scripts, then the preload hints,
// each group in name order and without repeated URLs. In dev mode the names
// are passed to the dev server unchanged.
func (a *App) Render(ctx context.Context, names []string, opts RenderOptions) ([]domain.Reference, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoEntriesSpecified
	}

	ctx, span := a.tracer.Start(ctx, "render")
	defer span.End()
	span.SetAttribute("entries", names)

	var (
		refs []domain.Reference
		err  error
	)
	switch mode := opts.Mode.(type) {
	case domain.DevMode:
		span.SetAttribute("mode", "dev")
		refs = assets.DevReferences(names, opts.URLTransform, mode.ReactRefresh)
	case domain.ManifestMode:
		span.SetAttribute("mode", "manifest")
		refs, err = a.renderManifest(ctx, names, mode.Source, opts)
	default:
		err = zerr.With(zerr.Wrap(domain.ErrUnsupportedMode, "cannot render"), "mode", fmt.Sprintf("%T", opts.Mode))
	}

	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("references", len(refs))
	return refs, nil
}

func (a *App) renderManifest(
	ctx context.Context,
	names []string,
	src domain.ManifestSource,
	opts RenderOptions,
) ([]domain.Reference, error) {
	manifest, err := a.Manifest(ctx, src)
	if err != nil {
		return nil, err
	}

	resolutions := make([]*domain.Resolution, len(names))
	errs := make([]error, len(names))
	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			resolutions[i], errs[i] = manifest.Resolve(name)
			return nil
		})
	}
	_ = g.Wait()

	// Report the first failing name in request order.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	buildOpts := assets.BuildOptions{Transform: opts.URLTransform, CacheBust: opts.CacheBust}
	return mergeReferences(resolutions, buildOpts), nil
}

// mergeReferences groups the references of several resolutions by kind and
// drops URLs that were already emitted. Entry scripts are placed before
// preloads so a chunk that is both keeps its script reference.
func mergeReferences(resolutions []*domain.Resolution, opts assets.BuildOptions) []domain.Reference {
	var styles, scripts, preloads []domain.Reference
	for _, res := range resolutions {
		for _, ref := range assets.BuildAll(res.Paths(), opts) {
			switch ref.Kind {
			case domain.KindStylesheet:
				styles = append(styles, ref)
			case domain.KindModulePreload:
				preloads = append(preloads, ref)
			default:
				scripts = append(scripts, ref)
			}
		}
	}

	seen := make(map[string]bool, len(styles)+len(scripts)+len(preloads))
	out := make([]domain.Reference, 0, len(styles)+len(scripts)+len(preloads))
	for _, group := range [][]domain.Reference{styles, scripts, preloads} {
		for _, ref := range group {
			if seen[ref.URL] {
				continue
			}
			seen[ref.URL] = true
			out = append(out, ref)
		}
	}
	return out
}

// Invalidate forces the next render of src to parse the manifest again.
func (a *App) Invalidate(src domain.ManifestSource) {
	a.cache.Invalidate(src)
}

// LoadConfig reads the configuration from the given working directory.
func (a *App) LoadConfig(cwd string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// Plan turns a configuration into render options. modeFlag is one of
// "auto", "dev" or "build"; "auto" consults the dev server detector.
func (a *App) Plan(cfg *domain.Config, modeFlag string) (RenderOptions, error) {
	detected, origin, err := a.detector.Detect(cfg.HotFile)
	if err != nil {
		return RenderOptions{}, zerr.Wrap(err, "failed to detect dev server")
	}

	if detector.ResolveMode(detected, modeFlag) {
		if origin == "" {
			origin = cfg.DevServer
		}
		a.logger.Info("rendering in dev mode", "origin", origin)
		return RenderOptions{
			Mode:         domain.DevMode{ReactRefresh: cfg.ReactRefresh},
			URLTransform: assets.DevServerURL(origin),
		}, nil
	}

	return RenderOptions{
		Mode:         domain.ManifestMode{Source: domain.SourceAt(cfg.Manifest)},
		URLTransform: assets.PrefixURL(cfg.BaseURL),
		CacheBust:    cfg.CacheBust,
	}, nil
}

// Manifest returns the parsed manifest for src.
func (a *App) Manifest(ctx context.Context, src domain.ManifestSource) (*domain.Manifest, error) {
	ctx, span := a.tracer.Start(ctx, "manifest.resolve")
	defer span.End()
	if !src.IsParsed() {
		span.SetAttribute("location", src.Location)
	}

	manifest, err := a.cache.Resolve(ctx, src)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to resolve manifest")
	}
	span.SetAttribute("digest", manifest.Digest())
	return manifest, nil
}

// CheckReport summarizes a manifest check.
type CheckReport struct {
	Digest  string
	Chunks  int
	Entries int
	// Missing lists files named by the manifest that are absent from the output directory.
	Missing []string
}

// Check validates the import graph of src. When outDir is set, every file the
// manifest names is also expected to exist under it.
func (a *App) Check(ctx context.Context, src domain.ManifestSource, outDir string) (*CheckReport, error) {
	manifest, err := a.Manifest(ctx, src)
	if err != nil {
		return nil, err
	}

	if err := manifest.Validate(); err != nil {
		return nil, zerr.Wrap(err, "manifest graph is inconsistent")
	}

	report := &CheckReport{Digest: manifest.Digest(), Chunks: manifest.Len()}
	for range manifest.Entries() {
		report.Entries++
	}

	if outDir == "" {
		return report, nil
	}

	missing, err := a.verifier.VerifyOutputs(outDir, outputFiles(manifest))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to verify outputs")
	}
	report.Missing = missing
	if len(missing) > 0 {
		for _, m := range missing {
			a.logger.Warn("output missing", "file", m, "dir", outDir)
		}
		return report, zerr.With(zerr.Wrap(domain.ErrMissingOutputs, "check failed"), "count", len(missing))
	}
	return report, nil
}

// outputFiles lists every distinct file, stylesheet and asset named by the manifest.
func outputFiles(m *domain.Manifest) []string {
	seen := make(map[domain.InternedString]bool)
	var files []string
	add := func(p domain.InternedString) {
		if p.String() == "" || seen[p] {
			return
		}
		seen[p] = true
		files = append(files, p.String())
	}

	for _, key := range m.Keys() {
		c, _ := m.Chunk(key)
		add(c.File)
		for _, css := range c.CSS {
			add(css)
		}
		for _, asset := range c.Assets {
			add(asset)
		}
	}
	return files
}
