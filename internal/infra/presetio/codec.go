package presetio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

const documentVersion = 1

// document is the export envelope. TOML needs a table at the top level, so
// every format shares it.
type document struct {
	Version int         `json:"version" yaml:"version" toml:"version"`
	Presets []presetDTO `json:"presets" yaml:"presets" toml:"presets"`
}

type presetDTO struct {
	Name                       string `json:"name" yaml:"name" toml:"name"`
	AuthToken                  string `json:"auth_token" yaml:"auth_token" toml:"auth_token"`
	BaseURL                    string `json:"base_url" yaml:"base_url" toml:"base_url"`
	MaxOutputTokens            string `json:"max_output_tokens" yaml:"max_output_tokens" toml:"max_output_tokens"`
	DisableNonessentialTraffic string `json:"disable_nonessential_traffic" yaml:"disable_nonessential_traffic" toml:"disable_nonessential_traffic"`
}

// Encode writes presets to w in the given format.
func Encode(w io.Writer, presets []domain.Preset, f Format) error {
	doc := document{Version: documentVersion, Presets: make([]presetDTO, 0, len(presets))}
	for _, p := range presets {
		doc.Presets = append(doc.Presets, presetDTO(p))
	}

	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	default:
		_, err = ParseFormat(string(f))
		return err
	}
	if err != nil {
		return &domain.OpError{Op: "presetio.encode", Kind: domain.KindExecution, Err: err}
	}
	return nil
}

// Decode reads presets from r. JSON input may also be a bare array, which
// is the layout of api-presets.json itself.
func Decode(r io.Reader, f Format) ([]domain.Preset, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.OpError{Op: "presetio.decode", Kind: domain.KindExecution, Err: err}
	}

	var doc document
	switch f {
	case FormatJSON:
		trimmed := bytes.TrimSpace(b)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			err = json.Unmarshal(trimmed, &doc.Presets)
		} else {
			err = json.Unmarshal(trimmed, &doc)
		}
	case FormatYAML:
		err = yaml.Unmarshal(b, &doc)
	case FormatTOML:
		err = toml.Unmarshal(b, &doc)
	default:
		_, err = ParseFormat(string(f))
		return nil, err
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "presetio.decode",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%s: %w", f, err),
		}
	}
	if doc.Version > documentVersion {
		return nil, &domain.OpError{
			Op:   "presetio.decode",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported document version %d", doc.Version),
		}
	}

	out := make([]domain.Preset, 0, len(doc.Presets))
	for _, p := range doc.Presets {
		out = append(out, domain.Preset(p))
	}
	return out, nil
}
