package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vitemap/cmd/vitemap/commands"
	"go.trai.ch/vitemap/internal/app"
	"go.trai.ch/vitemap/internal/build"
	"go.trai.ch/vitemap/internal/core/domain"
)

type mockApp struct {
	cfg        *domain.Config
	planMode   string
	planCfg    *domain.Config
	renderFunc func(ctx context.Context, names []string, opts app.RenderOptions) ([]domain.Reference, error)
	manifest   *domain.Manifest
	checkFunc  func(src domain.ManifestSource, outDir string) (*app.CheckReport, error)
	sources    []domain.ManifestSource
}

func (m *mockApp) LoadConfig(_ string) (*domain.Config, error) {
	if m.cfg == nil {
		return &domain.Config{Manifest: "dist/.vite/manifest.json"}, nil
	}
	cfg := *m.cfg
	return &cfg, nil
}

func (m *mockApp) Plan(cfg *domain.Config, modeFlag string) (app.RenderOptions, error) {
	m.planCfg = cfg
	m.planMode = modeFlag
	return app.RenderOptions{Mode: domain.ManifestMode{Source: domain.SourceAt(cfg.Manifest)}}, nil
}

func (m *mockApp) Render(ctx context.Context, names []string, opts app.RenderOptions) ([]domain.Reference, error) {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, names, opts)
	}
	return nil, nil
}

func (m *mockApp) Manifest(_ context.Context, src domain.ManifestSource) (*domain.Manifest, error) {
	m.sources = append(m.sources, src)
	if m.manifest == nil {
		return nil, domain.ErrManifestLoadFailed
	}
	return m.manifest, nil
}

func (m *mockApp) Check(_ context.Context, src domain.ManifestSource, outDir string) (*app.CheckReport, error) {
	m.sources = append(m.sources, src)
	return m.checkFunc(src, outDir)
}

func scenarioRefs() []domain.Reference {
	return []domain.Reference{
		{Kind: domain.KindStylesheet, URL: "/app-abc.css"},
		{Kind: domain.KindScript, URL: "/app-abc.js"},
		{Kind: domain.KindModulePreload, URL: "/shared-def.js"},
	}
}

func TestCommands_Render(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedNames []string
		mock := &mockApp{
			renderFunc: func(_ context.Context, names []string, _ app.RenderOptions) ([]domain.Reference, error) {
				capturedNames = names
				return scenarioRefs(), nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"render", "app.js", "admin.js",
			"--manifest", "build/manifest.json",
			"--mode", "build",
			"--base-url", "https://cdn.example.com",
			"--cache-bust",
			"--react-refresh",
		})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"app.js", "admin.js"}, capturedNames)
		assert.Equal(t, "build", mock.planMode)
		require.NotNil(t, mock.planCfg)
		assert.Equal(t, "build/manifest.json", mock.planCfg.Manifest)
		assert.Equal(t, "https://cdn.example.com", mock.planCfg.BaseURL)
		assert.True(t, mock.planCfg.CacheBust)
		assert.True(t, mock.planCfg.ReactRefresh)
	})

	t.Run("keeps config values when flags are absent", func(t *testing.T) {
		mock := &mockApp{cfg: &domain.Config{Manifest: "m.json", BaseURL: "/static", CacheBust: true}}

		cli := commands.New(mock)
		cli.SetArgs([]string{"render", "app.js"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "auto", mock.planMode)
		assert.Equal(t, "m.json", mock.planCfg.Manifest)
		assert.Equal(t, "/static", mock.planCfg.BaseURL)
		assert.True(t, mock.planCfg.CacheBust)
	})

	t.Run("prints text", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(_ context.Context, _ []string, _ app.RenderOptions) ([]domain.Reference, error) {
				return scenarioRefs(), nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs([]string{"render", "app.js"})

		require.NoError(t, cli.Execute(context.Background()))
		g := goldie.New(t)
		g.Assert(t, "render_text", buf.Bytes())
	})

	t.Run("prints html", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(_ context.Context, _ []string, _ app.RenderOptions) ([]domain.Reference, error) {
				return append(scenarioRefs(), domain.Reference{Kind: domain.KindInlineModule, Content: "init()\n"}), nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs([]string{"render", "app.js", "--format", "html"})

		require.NoError(t, cli.Execute(context.Background()))
		g := goldie.New(t)
		g.Assert(t, "render_html", buf.Bytes())
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"render", "app.js", "--format", "xml"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(_ context.Context, _ []string, _ app.RenderOptions) ([]domain.Reference, error) {
				return nil, errors.Join(domain.ErrUnknownEntry, errors.New("missing"))
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"render", "missing"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		assert.ErrorIs(t, err, domain.ErrUnknownEntry)
	})

	t.Run("shows usage when no entries provided", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(_ context.Context, _ []string, _ app.RenderOptions) ([]domain.Reference, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"render"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Inspect(t *testing.T) {
	m := domain.NewManifest()
	require.NoError(t, m.AddChunk(&domain.Chunk{
		Key:     domain.NewInternedString("app.js"),
		File:    domain.NewInternedString("app-abc.js"),
		CSS:     domain.NewInternedStrings([]string{"app-abc.css"}),
		IsEntry: true,
	}))
	m.SetDigest("0123456789abcdef")
	mock := &mockApp{manifest: m}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, new(bytes.Buffer))
	cli.SetArgs([]string{"inspect", "--manifest", "other.json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []domain.ManifestSource{domain.SourceAt("other.json")}, mock.sources)
	assert.Contains(t, buf.String(), "digest:   0123456789abcdef")
	assert.Contains(t, buf.String(), "chunks:   1")
	assert.Contains(t, buf.String(), "app.js")
	assert.Contains(t, buf.String(), "app-abc.js")
}

func TestCommands_InspectJSON(t *testing.T) {
	m := domain.NewManifest()
	require.NoError(t, m.AddChunk(&domain.Chunk{
		Key:     domain.NewInternedString("app.js"),
		File:    domain.NewInternedString("app-abc.js"),
		CSS:     domain.NewInternedStrings([]string{"app-abc.css"}),
		IsEntry: true,
	}))
	require.NoError(t, m.AddChunk(&domain.Chunk{
		Key:  domain.NewInternedString("shared.js"),
		File: domain.NewInternedString("shared-def.js"),
	}))
	m.SetDigest("0123456789abcdef")

	cli := commands.New(&mockApp{manifest: m})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, new(bytes.Buffer))
	cli.SetArgs([]string{"inspect", "-f", "json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.JSONEq(t, `{
		"manifest": "dist/.vite/manifest.json",
		"digest": "0123456789abcdef",
		"chunks": 2,
		"entries": [{"key": "app.js", "file": "app-abc.js", "src": "", "css": ["app-abc.css"]}]
	}`, buf.String())
}

func TestCommands_InspectUnknownFormat(t *testing.T) {
	m := domain.NewManifest()
	cli := commands.New(&mockApp{manifest: m})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"inspect", "-f", "yaml"})

	assert.ErrorContains(t, cli.Execute(context.Background()), "unknown output format")
}

func TestCommands_Check(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var capturedDir string
		mock := &mockApp{
			checkFunc: func(_ domain.ManifestSource, outDir string) (*app.CheckReport, error) {
				capturedDir = outDir
				return &app.CheckReport{Digest: "abc", Chunks: 3, Entries: 1}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs([]string{"check", "--out-dir", "dist"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "dist", capturedDir)
		assert.Equal(t, "ok: 3 chunks, 1 entries (digest abc)\n", buf.String())
	})

	t.Run("lists missing outputs", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ domain.ManifestSource, _ string) (*app.CheckReport, error) {
				return &app.CheckReport{Missing: []string{"a.js", "a.css"}}, domain.ErrMissingOutputs
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs([]string{"check", "--out-dir", "dist"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrMissingOutputs)
		assert.Equal(t, "missing: a.js\nmissing: a.css\n", buf.String())
	})

	t.Run("graph error", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ domain.ManifestSource, _ string) (*app.CheckReport, error) {
				return nil, domain.ErrUnknownImport
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"check"})

		assert.ErrorIs(t, cli.Execute(context.Background()), domain.ErrUnknownImport)
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "vitemap version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_Verbose(t *testing.T) {
	var got []bool
	cli := commands.New(&mockApp{})
	cli.OnVerbose(func(v bool) { got = append(got, v) })
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	cli.SetArgs([]string{"version", "--verbose"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, []bool{true}, got)
}

func TestCommands_VerboseShorthand(t *testing.T) {
	var (
		got   []bool
		names []string
	)
	mock := &mockApp{
		renderFunc: func(_ context.Context, n []string, _ app.RenderOptions) ([]domain.Reference, error) {
			names = n
			return scenarioRefs(), nil
		},
	}
	cli := commands.New(mock)
	cli.OnVerbose(func(v bool) { got = append(got, v) })
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	cli.SetArgs([]string{"-v", "render", "app.js"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, []bool{true}, got)
	assert.Equal(t, []string{"app.js"}, names)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "vitemap version "+build.Version)
}
