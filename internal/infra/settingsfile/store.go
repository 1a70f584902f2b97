package settingsfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

const defaultPerm fs.FileMode = 0o600

// Store reads and writes the client's settings.json.
type Store struct {
	path string
	perm fs.FileMode
}

type Option func(*Store)

// WithPerm sets the mode used when the file is created.
func WithPerm(perm fs.FileMode) Option {
	return func(s *Store) { s.perm = perm }
}

func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path: filepath.Clean(path),
		perm: defaultPerm,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SettingsStore = (*Store)(nil)

func (s *Store) Path() string { return s.path }

func (s *Store) Read() (domain.Settings, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.Settings{}, &domain.OpError{
			Op:   "settingsfile.read",
			Kind: kind,
			Path: s.path,
			Err:  err,
		}
	}

	st, err := Decode(b)
	if err != nil {
		return domain.Settings{}, &domain.OpError{
			Op:   "settingsfile.decode",
			Kind: domain.KindInvalidConfig,
			Path: s.path,
			Err:  err,
		}
	}
	return st, nil
}

func (s *Store) Write(st domain.Settings) error {
	b, err := Encode(st)
	if err != nil {
		return &domain.OpError{
			Op:   "settingsfile.encode",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	perm := s.perm
	if info, statErr := os.Stat(s.path); statErr == nil {
		perm = info.Mode().Perm()
	}

	return writeAtomic(s.path, b, perm, "settingsfile.write")
}

// writeAtomic writes to a sibling tmp file and renames it into place.
func writeAtomic(path string, b []byte, perm fs.FileMode, op string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: dir, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, perm); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}
