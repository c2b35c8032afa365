package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, v := range []string{"ANTHROPIC_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		t.Setenv(v, "")
	}
}

func TestNew(t *testing.T) {
	clearKeys(t)

	tests := []struct {
		name     string
		provider string
		model    string
		wantName string
	}{
		{name: "default is anthropic", provider: "", wantName: ProviderAnthropic},
		{name: "anthropic", provider: "anthropic", wantName: ProviderAnthropic},
		{name: "gemini", provider: "gemini", wantName: ProviderGemini},
		{name: "google alias", provider: "Google", wantName: ProviderGemini},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.provider, tt.model, "explicit-key")
			if err != nil {
				t.Fatalf("New(%q): %v", tt.provider, err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("openai", "", "key")
	if err == nil || !strings.Contains(err.Error(), "unknown AI provider") {
		t.Errorf("New(openai) error = %v", err)
	}
}

func TestNew_MissingKey(t *testing.T) {
	clearKeys(t)

	for _, name := range []string{"anthropic", "gemini"} {
		t.Run(name, func(t *testing.T) {
			_, err := New(name, "", "")
			if !errors.Is(err, ErrMissingAPIKey) {
				t.Errorf("New(%q) error = %v, want ErrMissingAPIKey", name, err)
			}
		})
	}
}

func TestNew_EnvFallback(t *testing.T) {
	clearKeys(t)
	t.Setenv("ANTHROPIC_API_KEY", "from-env")
	t.Setenv("GOOGLE_API_KEY", "google-env")

	a, err := NewAnthropic("", "")
	if err != nil {
		t.Fatalf("NewAnthropic: %v", err)
	}
	if a.apiKey != "from-env" || a.Model() != anthropicDefaultModel {
		t.Errorf("anthropic key/model = %q/%q", a.apiKey, a.Model())
	}

	g, err := NewGemini("gemini-custom", "")
	if err != nil {
		t.Fatalf("NewGemini: %v", err)
	}
	if g.apiKey != "google-env" || g.Model() != "gemini-custom" {
		t.Errorf("gemini key/model = %q/%q", g.apiKey, g.Model())
	}

	t.Setenv("GEMINI_API_KEY", "gemini-env")
	g, err = NewGemini("", "")
	if err != nil {
		t.Fatalf("NewGemini: %v", err)
	}
	if g.apiKey != "gemini-env" || g.Model() != geminiDefaultModel {
		t.Errorf("GEMINI_API_KEY should win: key/model = %q/%q", g.apiKey, g.Model())
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := retryWithBackoff(ctx, 3, func() error {
		calls++
		return &rateLimitError{}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryWithBackoff_PlainErrorNotRetried(t *testing.T) {
	want := errors.New("boom")
	calls := 0
	err := retryWithBackoff(context.Background(), 3, func() error {
		calls++
		return want
	})
	if err != want {
		t.Errorf("err = %v, want %v", err, want)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
