package commands

import (
	"fmt"
	"html"
	"io"
	"text/tabwriter"

	"go.trai.ch/vitemap/internal/core/domain"
	"go.trai.ch/zerr"
)

type printer func(w io.Writer, refs []domain.Reference) error

func printerFor(format string) (printer, error) {
	switch format {
	case "", "text":
		return printText, nil
	case "html":
		return printHTML, nil
	default:
		return nil, zerr.With(zerr.New("unknown output format"), "format", format)
	}
}

func printText(w io.Writer, refs []domain.Reference) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, ref := range refs {
		target := ref.URL
		if ref.Kind == domain.KindInlineModule {
			target = fmt.Sprintf("(%d bytes)", len(ref.Content))
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", ref.Kind, target); err != nil {
			return zerr.Wrap(err, "failed to write references")
		}
	}
	return tw.Flush()
}

// printHTML writes the tags a page head would carry for refs. It is a
// convenience for inspection; host frameworks render references themselves.
func printHTML(w io.Writer, refs []domain.Reference) error {
	for _, ref := range refs {
		var line string
		switch ref.Kind {
		case domain.KindStylesheet:
			line = fmt.Sprintf(`<link rel="stylesheet" href="%s">`, html.EscapeString(ref.URL))
		case domain.KindModulePreload:
			line = fmt.Sprintf(`<link rel="modulepreload" href="%s">`, html.EscapeString(ref.URL))
		case domain.KindInlineModule:
			line = "<script type=\"module\">\n" + ref.Content + "</script>"
		default:
			line = fmt.Sprintf(`<script type="module" src="%s"></script>`, html.EscapeString(ref.URL))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return zerr.Wrap(err, "failed to write references")
		}
	}
	return nil
}
