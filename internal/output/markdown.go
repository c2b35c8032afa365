package output

import (
	"fmt"
	"strings"
)

// QMDWriter writes the deck as a Quarto reveal.js document.
type QMDWriter struct{}

// Write renders the deck and writes it to options.OutputPath.
func (w *QMDWriter) Write(deck *Deck, options OutputOptions) error {
	if options.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	doc, err := RenderQMD(deck)
	if err != nil {
		return err
	}
	return WriteFile(options.OutputPath, doc)
}

// RenderQMD builds the whole document. The result depends only on deck.
func RenderQMD(deck *Deck) (string, error) {
	fm, err := renderFrontMatter(Escape(deck.Title))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(fm)
	b.WriteString("\n")
	writeHeader(&b, deck)
	writeOverview(&b, deck)
	writeHighlights(&b, deck)
	if deck.IncludeDiff && len(deck.Slides) > 0 {
		writeAppendix(&b, deck)
	}
	return b.String(), nil
}

func writeHeader(b *strings.Builder, deck *Deck) {
	fmt.Fprintf(b, "# %s\n\n", Escape(deck.Title))
	if deck.Task != "" {
		fmt.Fprintf(b, "- **Task**: `%s`  \n", Escape(deck.Task))
	}
	fmt.Fprintf(b, "- **Repo**: `%s`  \n", Escape(deck.RepoPath))
	fmt.Fprintf(b, "- **Range**: `%s`  \n", Escape(deck.Range))
	fmt.Fprintf(b, "- **Generated**: %s\n\n", deck.GeneratedAt.Format(generatedLayout))
	b.WriteString("---\n\n")
}

func writeOverview(b *strings.Builder, deck *Deck) {
	b.WriteString("## Overview\n\n")
	fmt.Fprintf(b, "- Commits: **%d**  \n", len(deck.Slides))

	authors := "-"
	if len(deck.Authors) > 0 {
		authors = Escape(strings.Join(deck.Authors, ", "))
	}
	fmt.Fprintf(b, "- Authors: %s  \n", authors)

	if len(deck.TopFiles) > 0 {
		fmt.Fprintf(b, "- Most changed files/paths (Top %d):\n", len(deck.TopFiles))
		for _, fc := range deck.TopFiles {
			fmt.Fprintf(b, "  - `%s` × %d\n", Escape(fc.Path), fc.Count)
		}
	} else {
		b.WriteString("- No file change information\n")
	}
	b.WriteString("\n---\n\n")
}

func writeHighlights(b *strings.Builder, deck *Deck) {
	b.WriteString("## Commit Highlights\n\n")
	if len(deck.Slides) == 0 {
		b.WriteString("_no commits found; review the filter settings_\n\n")
	}

	for _, s := range deck.Slides {
		c := s.Commit
		fmt.Fprintf(b, "### %s — %s\n", Escape(c.ShortSHA), Escape(c.Subject))
		fmt.Fprintf(b, "`%s` / %s\n\n", Escape(c.Date), Escape(c.Author))
		if summary := strings.TrimSpace(s.Summary); summary != "" {
			b.WriteString("**Summary:**\n\n")
			b.WriteString(Escape(summary))
			b.WriteString("\n\n")
		}
		b.WriteString("```text\n" + s.Stat + "\n```\n\n")
	}
	b.WriteString("\n---\n\n")
}

func writeAppendix(b *strings.Builder, deck *Deck) {
	b.WriteString("## Appendix: Patches\n\n")
	for _, s := range deck.Slides {
		c := s.Commit
		fmt.Fprintf(b, "### Patch %s — %s\n\n", Escape(c.ShortSHA), Escape(c.Subject))
		b.WriteString("```diff\n" + strings.TrimRight(s.Patch, "\n") + "\n```\n\n")
	}
}
