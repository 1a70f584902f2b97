package domain

import "testing"

func TestGetSetVars(t *testing.T) {
	var vars Vars

	vars = Set(vars, EnvAuthToken, "abc123")
	got, ok := Get(vars, EnvAuthToken)
	if !ok {
		t.Fatalf("expected key to exist")
	}
	if got != "abc123" {
		t.Fatalf("expected value %q, got %q", "abc123", got)
	}

	if _, ok := Get(vars, "missing"); ok {
		t.Fatalf("expected missing key to be absent")
	}
	if _, ok := Get(nil, "missing"); ok {
		t.Fatalf("expected nil vars to report absent")
	}
}

func TestMergeVars(t *testing.T) {
	base := Vars{
		"HTTP_PROXY": "http://proxy",
		EnvAuthToken: "base",
	}
	override := Vars{
		EnvAuthToken: "override",
		EnvBaseURL:   "https://gw.example",
	}

	merged := Merge(base, override)

	if merged["HTTP_PROXY"] != "http://proxy" {
		t.Fatalf("expected base value to remain")
	}
	if merged[EnvAuthToken] != "override" {
		t.Fatalf("expected override value to win")
	}
	if merged[EnvBaseURL] != "https://gw.example" {
		t.Fatalf("expected new override key to be present")
	}

	if base[EnvAuthToken] != "base" {
		t.Fatalf("expected base to remain unchanged")
	}
}
