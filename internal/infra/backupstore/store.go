package backupstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/infra/settingsfile"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

const (
	stampLayout = "20060102T150405.000000000Z"
	// legacyStampLayout is the second-precision form of older snapshots.
	legacyStampLayout = "20060102T150405Z"
)

// FileStore keeps settings snapshots as <dir>/<UTC stamp>_<short id>.json.
type FileStore struct {
	dir   string
	now   func() time.Time
	newID func() string
}

type Option func(*FileStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

// WithIDGenerator overrides the random suffix (useful for tests).
func WithIDGenerator(gen func() string) Option {
	return func(s *FileStore) { s.newID = gen }
}

func NewFileStore(dir string, opts ...Option) *FileStore {
	s := &FileStore{
		dir:   filepath.Clean(dir),
		now:   time.Now,
		newID: shortUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.BackupStore = (*FileStore)(nil)

func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) Snapshot(st domain.Settings) (domain.BackupRef, error) {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return domain.BackupRef{}, &domain.OpError{
			Op:   "backupstore.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	b, err := settingsfile.Encode(st)
	if err != nil {
		return domain.BackupRef{}, &domain.OpError{
			Op:   "backupstore.encode",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// Stamps are strictly increasing within a directory, so the snapshot just
	// written is always the newest one and survives Prune.
	ts := s.now().UTC()
	if refs, err := s.List(); err == nil && len(refs) > 0 && !ts.After(refs[0].CreatedAt) {
		ts = refs[0].CreatedAt.Add(time.Nanosecond)
	}
	id := fmt.Sprintf("%s_%s", ts.Format(stampLayout), s.newID())
	path := filepath.Join(s.dir, id+".json")

	if err := os.WriteFile(path, b, 0o600); err != nil {
		return domain.BackupRef{}, &domain.OpError{
			Op:   "backupstore.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return domain.BackupRef{ID: id, Path: path, CreatedAt: ts}, nil
}

// List returns snapshots newest first.
func (s *FileStore) List() ([]domain.BackupRef, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.BackupRef{}, nil
		}
		return nil, &domain.OpError{
			Op:   "backupstore.list",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	refs := make([]domain.BackupRef, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".json")
		created, ok := parseID(id)
		if !ok {
			continue
		}
		refs = append(refs, domain.BackupRef{
			ID:        id,
			Path:      filepath.Join(s.dir, e.Name()),
			CreatedAt: created,
		})
	}

	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].CreatedAt.Equal(refs[j].CreatedAt) {
			return refs[i].ID > refs[j].ID
		}
		return refs[i].CreatedAt.After(refs[j].CreatedAt)
	})
	return refs, nil
}

func (s *FileStore) Load(id string) (domain.Settings, error) {
	id = strings.TrimSpace(strings.TrimSuffix(id, ".json"))
	if _, ok := parseID(id); !ok || strings.ContainsAny(id, `/\`) {
		return domain.Settings{}, &domain.OpError{
			Op:   "backupstore.load",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("invalid backup id %q: %w", id, domain.ErrNotFound),
		}
	}

	path := filepath.Join(s.dir, id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.Settings{}, &domain.OpError{Op: "backupstore.load", Kind: kind, Path: path, Err: err}
	}

	st, err := settingsfile.Decode(b)
	if err != nil {
		return domain.Settings{}, &domain.OpError{Op: "backupstore.decode", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	return st, nil
}

// Prune deletes all but the newest keep snapshots. keep <= 0 disables pruning.
func (s *FileStore) Prune(keep int) error {
	if keep <= 0 {
		return nil
	}

	refs, err := s.List()
	if err != nil {
		return err
	}
	if len(refs) <= keep {
		return nil
	}

	for _, r := range refs[keep:] {
		if err := os.Remove(r.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &domain.OpError{Op: "backupstore.prune", Kind: domain.KindExecution, Path: r.Path, Err: err}
		}
	}
	return nil
}

func parseID(id string) (time.Time, bool) {
	stamp, suffix, ok := strings.Cut(id, "_")
	if !ok || suffix == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{stampLayout, legacyStampLayout} {
		if t, err := time.Parse(layout, stamp); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ScopeDir returns the snapshot directory for a settings file other than the
// user's own, so each target keeps its own history and retention.
func ScopeDir(base, settingsPath string) string {
	if abs, err := filepath.Abs(settingsPath); err == nil {
		settingsPath = abs
	}
	key := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.ToSlash(settingsPath)))
	return filepath.Join(filepath.Clean(base), "project-"+strings.ReplaceAll(key.String(), "-", "")[:12])
}

func shortUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
