package output

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

type frontMatter struct {
	Title  string       `yaml:"title"`
	Format formatOption `yaml:"format"`
}

type formatOption struct {
	RevealJS revealOptions `yaml:"revealjs"`
}

type revealOptions struct {
	SlideNumber  bool   `yaml:"slide-number"`
	Transition   string `yaml:"transition"`
	Controls     bool   `yaml:"controls"`
	Center       bool   `yaml:"center"`
	CodeOverflow string `yaml:"code-overflow"`
}

// renderFrontMatter returns the YAML block, including its --- delimiters.
func renderFrontMatter(title string) (string, error) {
	fm := frontMatter{
		Title: title,
		Format: formatOption{RevealJS: revealOptions{
			SlideNumber:  true,
			Transition:   "fade",
			Controls:     true,
			Center:       false,
			CodeOverflow: "wrap",
		}},
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return "", fmt.Errorf("encode front-matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode front-matter: %w", err)
	}
	buf.WriteString("---\n")
	return buf.String(), nil
}
