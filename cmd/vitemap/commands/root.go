// Package commands implements the CLI commands for vitemap.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/vitemap/internal/app"
	"go.trai.ch/vitemap/internal/build"
	"go.trai.ch/vitemap/internal/core/domain"
)

// CLI represents the command line interface for vitemap.
type CLI struct {
	app       Application
	rootCmd   *cobra.Command
	onVerbose func(bool)
}

// Application represents the application logic interface.
type Application interface {
	LoadConfig(cwd string) (*domain.Config, error)
	Plan(cfg *domain.Config, modeFlag string) (app.RenderOptions, error)
	Render(ctx context.Context, names []string, opts app.RenderOptions) ([]domain.Reference, error)
	Manifest(ctx context.Context, src domain.ManifestSource) (*domain.Manifest, error)
	Check(ctx context.Context, src domain.ManifestSource, outDir string) (*app.CheckReport, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vitemap",
		Short:         "Resolve the script and stylesheet references of Vite entry points",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Declared without a shorthand so -v stays free for --verbose.
	rootCmd.Flags().Bool("version", false, "Print the application version")
	rootCmd.InitDefaultVersionFlag()

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log informational messages to stderr")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.onVerbose == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.onVerbose(verbose)
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// OnVerbose registers a callback receiving the value of --verbose before any command runs.
func (c *CLI) OnVerbose(fn func(verbose bool)) {
	c.onVerbose = fn
}

// loadConfig reads the configuration and applies the flags shared by all commands.
func (c *CLI) loadConfig(cmd *cobra.Command) (*domain.Config, error) {
	cfg, err := c.app.LoadConfig(".")
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("manifest") {
		cfg.Manifest, _ = cmd.Flags().GetString("manifest")
	}
	return cfg, nil
}
