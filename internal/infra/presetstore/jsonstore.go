package presetstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// JSONStore keeps the preset collection in a single JSON array file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: filepath.Clean(path)}
}

var _ ports.PresetStore = (*JSONStore)(nil)

func (s *JSONStore) Path() string { return s.path }

func (s *JSONStore) List() ([]domain.Preset, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Preset{}, nil
		}
		return nil, &domain.OpError{
			Op:   "presetstore.read",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return []domain.Preset{}, nil
	}

	var dtos []jsonPreset
	if err := json.Unmarshal(b, &dtos); err != nil {
		return nil, &domain.OpError{
			Op:   "presetstore.decode",
			Kind: domain.KindInvalidConfig,
			Path: s.path,
			Err:  err,
		}
	}

	out := make([]domain.Preset, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, fromDTO(d))
	}
	return out, nil
}

func (s *JSONStore) SaveAll(presets []domain.Preset) error {
	dtos := make([]jsonPreset, 0, len(presets))
	for _, p := range presets {
		dtos = append(dtos, toDTO(p))
	}

	b, err := json.MarshalIndent(dtos, "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "presetstore.marshal",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "presetstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "presetstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "presetstore.rename",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}
