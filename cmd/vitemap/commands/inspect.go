package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/vitemap/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the build manifest and its entry chunks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			manifest, err := c.app.Manifest(cmd.Context(), domain.SourceAt(cfg.Manifest))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "", "text":
			case "json":
				return writeInspectJSON(out, cfg.Manifest, manifest)
			default:
				return zerr.With(zerr.New("unknown output format"), "format", format)
			}

			_, _ = fmt.Fprintf(out, "manifest: %s\ndigest:   %s\nchunks:   %d\n\n", cfg.Manifest, manifest.Digest(), manifest.Len())

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ENTRY\tFILE\tCSS\tIMPORTS")
			for entry := range manifest.Entries() {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", entry.Key, entry.File, len(entry.CSS), len(entry.Imports))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Path to the build manifest (overrides vitemap.yaml)")
	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	return cmd
}

type inspectReport struct {
	Manifest string         `json:"manifest"`
	Digest   string         `json:"digest"`
	Chunks   int            `json:"chunks"`
	Entries  []inspectEntry `json:"entries"`
}

type inspectEntry struct {
	Key     domain.InternedString   `json:"key"`
	File    domain.InternedString   `json:"file"`
	Src     domain.InternedString   `json:"src"`
	CSS     []domain.InternedString `json:"css,omitempty"`
	Imports []domain.InternedString `json:"imports,omitempty"`
}

func writeInspectJSON(w io.Writer, location string, manifest *domain.Manifest) error {
	report := inspectReport{
		Manifest: location,
		Digest:   manifest.Digest(),
		Chunks:   manifest.Len(),
		Entries:  []inspectEntry{},
	}
	for entry := range manifest.Entries() {
		report.Entries = append(report.Entries, inspectEntry{
			Key:     entry.Key,
			File:    entry.File,
			Src:     entry.Src,
			CSS:     entry.CSS,
			Imports: entry.Imports,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return zerr.Wrap(err, "failed to write manifest summary")
	}
	return nil
}
