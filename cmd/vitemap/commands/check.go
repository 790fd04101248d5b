package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/vitemap/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the manifest import graph and optionally its output files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			outDir, _ := cmd.Flags().GetString("out-dir")

			report, err := c.app.Check(cmd.Context(), domain.SourceAt(cfg.Manifest), outDir)
			if report == nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range report.Missing {
				_, _ = fmt.Fprintf(out, "missing: %s\n", m)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "ok: %d chunks, %d entries (digest %s)\n", report.Chunks, report.Entries, report.Digest)
			return nil
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Path to the build manifest (overrides vitemap.yaml)")
	cmd.Flags().String("out-dir", "", "Directory the manifest's files should exist in")
	return cmd
}
