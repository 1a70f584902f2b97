package presetio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported interchange formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat accepts json, yaml/yml and toml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", &domain.OpError{
		Op:   "presetio.format",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("unsupported format %q (want json, yaml or toml)", s),
	}
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", &domain.OpError{
			Op:   "presetio.format",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("cannot infer format without a file extension"),
		}
	}
	return ParseFormat(ext)
}
