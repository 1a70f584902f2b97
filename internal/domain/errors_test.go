package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "presetstore.read",
		Kind: KindInvalidConfig,
		Path: "/tmp/api-presets.json",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
	if !strings.Contains(err.Error(), "path=/tmp/api-presets.json") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("apply: %w", &OpError{Op: "settings.read", Kind: KindNotFound})

	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to see through fmt wrapping")
	}
	if IsKind(err, KindConflict) {
		t.Fatalf("expected other kinds not to match")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("expected plain errors not to match")
	}
}

func TestNilOpError(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}
