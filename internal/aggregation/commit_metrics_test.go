package aggregation

import (
	"testing"

	"github.com/masmgr/commitdeck/internal/git"
)

func TestUniqueAuthors(t *testing.T) {
	commits := []git.CommitRecord{
		{Author: "Zoe"},
		{Author: "alice"},
		{Author: "Bob"},
		{Author: "Zoe"},
		{Author: "  "},
	}

	got := UniqueAuthors(commits)
	want := []string{"Bob", "Zoe", "alice"}
	if len(got) != len(want) {
		t.Fatalf("UniqueAuthors() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniqueAuthors()[%d] = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestUniqueAuthors_Empty(t *testing.T) {
	if got := UniqueAuthors(nil); len(got) != 0 {
		t.Errorf("UniqueAuthors(nil) = %v, expected empty", got)
	}
}
