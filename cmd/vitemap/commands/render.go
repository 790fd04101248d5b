package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vitemap/internal/engine/assets"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [entries...]",
		Short: "Print the asset references of the given entries",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			format, _ := cmd.Flags().GetString("format")
			printer, err := printerFor(format)
			if err != nil {
				return err
			}

			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL, _ = cmd.Flags().GetString("base-url")
			}
			if cmd.Flags().Changed("react-refresh") {
				cfg.ReactRefresh, _ = cmd.Flags().GetBool("react-refresh")
			}
			if cmd.Flags().Changed("cache-bust") {
				cfg.CacheBust, _ = cmd.Flags().GetBool("cache-bust")
			}

			mode, _ := cmd.Flags().GetString("mode")
			opts, err := c.app.Plan(cfg, mode)
			if err != nil {
				return err
			}

			refs, err := c.app.Render(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			return printer(cmd.OutOrStdout(), refs)
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Path to the build manifest (overrides vitemap.yaml)")
	cmd.Flags().String("mode", "auto", "Render mode: auto, dev, or build")
	cmd.Flags().String("base-url", "", "Prefix for manifest asset URLs, e.g. a CDN host")
	cmd.Flags().Bool("react-refresh", false, "Emit the React fast-refresh preamble in dev mode")
	cmd.Flags().Bool("cache-bust", false, "Append "+assets.CacheBustQuery+" to manifest asset URLs")
	cmd.Flags().StringP("format", "f", "text", "Output format: text or html")
	return cmd
}
