package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ConsoleStatusWriter prints a short generation report for the user.
type ConsoleStatusWriter struct {
	// Out defaults to os.Stderr so the status never mixes with piped output.
	Out io.Writer
}

// Write prints the commit count, the output path and how to render the deck.
func (w *ConsoleStatusWriter) Write(deck *Deck, options OutputOptions) error {
	out := w.Out
	if out == nil {
		out = os.Stderr
	}

	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	if len(deck.Slides) == 0 {
		yellow.Fprintln(out, "No commits matched the filters.")
	} else {
		green.Fprintf(out, "Collected %d commit(s)\n", len(deck.Slides))
	}
	fmt.Fprintf(out, "Range: %s\n", deck.Range)
	green.Fprintf(out, "Wrote %s\n", options.OutputPath)

	for _, hint := range RenderHint(options.Format, options.OutputPath) {
		cyan.Fprintf(out, "  %s\n", hint)
	}
	return nil
}

// RenderHint returns the commands that turn the document into the requested format.
func RenderHint(format OutputFormat, path string) []string {
	switch format {
	case FormatPDF:
		return []string{
			fmt.Sprintf("quarto render %s", path),
			"then print the HTML slides to PDF, e.g. decktape reveal <slides>.html <slides>.pdf",
		}
	default:
		return []string{fmt.Sprintf("quarto render %s", path)}
	}
}
