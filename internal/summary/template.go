package summary

import (
	"context"
	"strings"
)

const (
	maxTemplateBullets = 5
	minDescriptionLen  = 20
	noStructuredInfo   = "_(no structured information)_"
)

// Template extracts bullet points from the commit message body.
type Template struct{}

func (Template) Mode() Mode { return ModeTemplate }

func (Template) Summarize(_ context.Context, in Input) string {
	bullets := extractBullets(in.Body)
	if len(bullets) > 0 {
		lines := make([]string, len(bullets))
		for i, b := range bullets {
			lines[i] = "- " + b
		}
		return strings.Join(lines, "\n")
	}

	if body := strings.TrimSpace(in.Body); body != "" {
		return body
	}
	return noStructuredInfo
}

// extractBullets keeps "- " and "* " items and longer prose lines, in order,
// up to maxTemplateBullets. Lines starting with '#' are comments.
func extractBullets(body string) []string {
	var out []string
	for _, raw := range strings.Split(body, "\n") {
		if len(out) == maxTemplateBullets {
			break
		}
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			if item := strings.TrimSpace(line[2:]); item != "" {
				out = append(out, item)
			}
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case len([]rune(line)) > minDescriptionLen:
			out = append(out, line)
		}
	}
	return out
}
