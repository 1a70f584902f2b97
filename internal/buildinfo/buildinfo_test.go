package buildinfo

import (
	"strings"
	"testing"
)

func TestString_IncludesFields(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-01"
	got := String()
	for _, want := range []string{"claudeswitch v1.2.3", "commit=abc123", "date=2026-01-01"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}
