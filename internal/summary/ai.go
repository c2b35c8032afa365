package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/masmgr/commitdeck/internal/llm"
)

const (
	aiPatchPreviewChars = 2000
	aiMaxTokens         = 300
	noBodyPlaceholder   = "(no commit message body)"
)

const aiSystemPrompt = `You summarize git commits for a slide deck read by engineers and reviewers.
Reply with 2-3 short markdown bullet points ("- ...").
Focus on what changed and why it matters, not on implementation details.
Do not repeat the commit id or subject verbatim and do not add any preamble.`

// AI asks a language model for a summary.
type AI struct {
	provider llm.Provider
	initErr  error
}

// NewAI creates the AI strategy. A provider that cannot be constructed
// (unknown name, no credential) turns every summary into a warning.
func NewAI(providerName, model, apiKey string) *AI {
	p, err := llm.New(providerName, model, apiKey)
	return &AI{provider: p, initErr: err}
}

// NewAIWithProvider creates the AI strategy around an existing provider.
func NewAIWithProvider(p llm.Provider) *AI {
	return &AI{provider: p}
}

func (a *AI) Mode() Mode { return ModeAI }

func (a *AI) Summarize(ctx context.Context, in Input) string {
	if a.initErr != nil {
		return warning("AI summary unavailable: %v", a.initErr)
	}
	if a.provider == nil {
		return warning("AI summary unavailable: no provider configured")
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		SystemPrompt: aiSystemPrompt,
		UserPrompt:   buildPrompt(in),
		MaxTokens:    aiMaxTokens,
	})
	if err != nil {
		return warning("AI summary unavailable: %v", err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return warning("AI summary unavailable: empty response from %s", a.provider.Name())
	}
	return text
}

// buildPrompt assembles the bounded commit context sent to the model.
func buildPrompt(in Input) string {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		body = noBodyPlaceholder
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Commit: %s\n", in.Commit.Subject)
	fmt.Fprintf(&b, "\nMessage body:\n%s\n", body)
	fmt.Fprintf(&b, "\nDiff statistics:\n%s\n", strings.TrimSpace(in.Stat))
	if preview := previewPatch(in.Patch); preview != "" {
		fmt.Fprintf(&b, "\nPatch preview:\n%s\n", preview)
	}
	return b.String()
}

// previewPatch returns at most the first aiPatchPreviewChars characters.
func previewPatch(patch string) string {
	r := []rune(patch)
	if len(r) <= aiPatchPreviewChars {
		return patch
	}
	return string(r[:aiPatchPreviewChars])
}
