package summary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/masmgr/commitdeck/internal/git"
	"github.com/masmgr/commitdeck/internal/llm"
)

var testCommit = git.CommitRecord{
	SHA:      "0123456789abcdef0123456789abcdef01234567",
	ShortSHA: "0123456",
	Subject:  "PROJ-3: tighten session handling",
	Author:   "Alice",
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeNone},
		{in: "none", want: ModeNone},
		{in: "Template", want: ModeTemplate},
		{in: " ai ", want: ModeAI},
		{in: "manual", want: ModeManual},
		{in: "llm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMode(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_SelectsExactlyOneStrategy(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	for _, mode := range Modes {
		t.Run(string(mode), func(t *testing.T) {
			s, err := New(Config{Mode: mode}, "/repo")
			if err != nil {
				t.Fatalf("New(%q): %v", mode, err)
			}
			if s.Mode() != mode {
				t.Errorf("Mode() = %q, want %q", s.Mode(), mode)
			}
		})
	}

	if _, err := New(Config{Mode: "bogus"}, "/repo"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestNew_ManualDefaultDir(t *testing.T) {
	s, err := New(Config{Mode: ModeManual}, "/repo")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m, ok := s.(*Manual)
	if !ok {
		t.Fatalf("New(manual) returned %T", s)
	}
	if want := filepath.Join("/repo", ".commit-summaries"); m.Dir != want {
		t.Errorf("Dir = %q, want %q", m.Dir, want)
	}
}

func TestModeNeeds(t *testing.T) {
	tests := []struct {
		mode      Mode
		wantBody  bool
		wantPatch bool
	}{
		{ModeAI, true, true},
		{ModeTemplate, true, false},
		{ModeManual, false, false},
		{ModeNone, false, false},
	}

	for _, tt := range tests {
		body, patch := tt.mode.Needs()
		if body != tt.wantBody || patch != tt.wantPatch {
			t.Errorf("%s.Needs() = %v, %v; want %v, %v", tt.mode, body, patch, tt.wantBody, tt.wantPatch)
		}
	}
}

func TestNone(t *testing.T) {
	if got := (None{}).Summarize(context.Background(), Input{Commit: testCommit, Body: "- x"}); got != "" {
		t.Errorf("None.Summarize = %q, want empty", got)
	}
}

func TestTemplate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "dash bullets",
			body: "- add retry\n- drop legacy flag",
			want: "- add retry\n- drop legacy flag",
		},
		{
			name: "star bullets normalized",
			body: "* first item\n  * second item",
			want: "- first item\n- second item",
		},
		{
			name: "long prose kept, short and comments skipped",
			body: "Short line\n# a comment that is long enough\nThis line explains the reason for the change",
			want: "- This line explains the reason for the change",
		},
		{
			name: "capped at five",
			body: "- a\n- b\n- c\n- d\n- e\n- f\n- g",
			want: "- a\n- b\n- c\n- d\n- e",
		},
		{
			name: "fallback to raw body",
			body: "  tiny\nshort  ",
			want: "tiny\nshort",
		},
		{
			name: "placeholder when empty",
			body: "",
			want: "_(no structured information)_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Template{}.Summarize(context.Background(), Input{Commit: testCommit, Body: tt.body})
			if got != tt.want {
				t.Errorf("Summarize(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestTemplate_Rapid_AtMostFiveBullets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOf(rapid.OneOf(
			rapid.StringMatching(`- [a-z ]{1,30}`),
			rapid.StringMatching(`\* [a-z ]{1,30}`),
			rapid.StringMatching(`[A-Za-z ]{0,40}`),
			rapid.StringMatching(`# [a-z ]{0,30}`),
		)).Draw(t, "lines")

		bullets := extractBullets(strings.Join(lines, "\n"))
		if len(bullets) > 5 {
			t.Fatalf("extracted %d bullets", len(bullets))
		}
	})
}

func writeSummary(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestManual(t *testing.T) {
	dir := t.TempDir()
	m := NewManual(dir)
	ctx := context.Background()

	check := func(t *testing.T, want string) {
		t.Helper()
		if got := m.Summarize(ctx, Input{Commit: testCommit}); got != want {
			t.Errorf("Summarize = %q, want %q", got, want)
		}
	}

	t.Run("missing", func(t *testing.T) {
		check(t, "⚠️ No manual summary found for 0123456")
	})

	t.Run("short id txt", func(t *testing.T) {
		writeSummary(t, filepath.Join(dir, "0123456.txt"), "from txt\n")
		check(t, "from txt")
	})

	t.Run("short id md wins over txt", func(t *testing.T) {
		writeSummary(t, filepath.Join(dir, "0123456.md"), "  short md  ")
		check(t, "short md")
	})

	t.Run("full id wins", func(t *testing.T) {
		writeSummary(t, filepath.Join(dir, testCommit.SHA+".md"), "full md")
		check(t, "full md")
	})

	t.Run("missing directory", func(t *testing.T) {
		got := NewManual(filepath.Join(dir, "nope")).Summarize(ctx, Input{Commit: testCommit})
		if !strings.Contains(got, "No manual summary found") {
			t.Errorf("Summarize = %q", got)
		}
	})
}

func TestCandidateNames(t *testing.T) {
	sha := testCommit.SHA
	want := []string{
		sha + ".md", "0123456.md",
		sha, "0123456",
		sha + ".txt", "0123456.txt",
	}

	got := candidateNames(testCommit)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("candidateNames = %v, want %v", got, want)
	}
}

type fakeProvider struct {
	reply string
	err   error
	last  llm.Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(_ context.Context, req llm.Request) (llm.Response, error) {
	f.last = req
	return llm.Response{Content: f.reply}, f.err
}

func TestAI(t *testing.T) {
	ctx := context.Background()
	longPatch := strings.Repeat("x", 5000)

	t.Run("success", func(t *testing.T) {
		p := &fakeProvider{reply: "  - keeps sessions alive\n- explains why  "}
		got := NewAIWithProvider(p).Summarize(ctx, Input{Commit: testCommit, Stat: " 1 file changed", Patch: longPatch})

		if want := "- keeps sessions alive\n- explains why"; got != want {
			t.Errorf("Summarize = %q, want %q", got, want)
		}
		if p.last.MaxTokens != 300 {
			t.Errorf("MaxTokens = %d, want 300", p.last.MaxTokens)
		}
		if !strings.Contains(p.last.SystemPrompt, "2-3") {
			t.Errorf("system prompt = %q", p.last.SystemPrompt)
		}
		for _, want := range []string{testCommit.Subject, "(no commit message body)", "1 file changed", strings.Repeat("x", 2000)} {
			if !strings.Contains(p.last.UserPrompt, want) {
				t.Errorf("user prompt missing %.40q", want)
			}
		}
		if strings.Contains(p.last.UserPrompt, strings.Repeat("x", 2001)) {
			t.Error("patch preview not capped at 2000 characters")
		}
	})

	t.Run("provider error", func(t *testing.T) {
		p := &fakeProvider{err: errors.New("upstream down")}
		got := NewAIWithProvider(p).Summarize(ctx, Input{Commit: testCommit})
		if !strings.HasPrefix(got, "⚠️ AI summary unavailable: ") {
			t.Errorf("Summarize = %q", got)
		}
	})

	t.Run("empty reply", func(t *testing.T) {
		got := NewAIWithProvider(&fakeProvider{reply: "  "}).Summarize(ctx, Input{Commit: testCommit})
		if !strings.Contains(got, "AI summary unavailable") {
			t.Errorf("Summarize = %q", got)
		}
	})

	t.Run("missing credential", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "")
		got := NewAI("anthropic", "", "").Summarize(ctx, Input{Commit: testCommit})
		if !strings.Contains(got, "AI summary unavailable") || !strings.Contains(got, "API key") {
			t.Errorf("Summarize = %q", got)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		got := NewAI("nope", "", "k").Summarize(ctx, Input{Commit: testCommit})
		if !strings.Contains(got, "unknown AI provider") {
			t.Errorf("Summarize = %q", got)
		}
	})
}
