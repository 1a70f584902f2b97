package projectfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// Marker is the directory that makes a folder a project root.
const Marker = ".claude"

var _ ports.ProjectLocator = (*Finder)(nil)

// Finder locates a project root by searching for a .claude directory upward.
type Finder struct {
	Marker string // defaults to ".claude"

	// StopAt, when set, ends the search before this directory is examined.
	// The CLI sets it to the user's home so ~/.claude is never taken as a
	// project.
	StopAt string
}

func NewFinder() *Finder {
	return &Finder{Marker: Marker}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	marker := f.Marker
	if marker == "" {
		marker = Marker
	}
	stop := ""
	if f.StopAt != "" {
		stop = filepath.Clean(f.StopAt)
	}

	cur := filepath.Clean(abs)
	for {
		if cur == stop {
			break
		}
		if info, err := os.Stat(filepath.Join(cur, marker)); err == nil && info.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	return "", &domain.OpError{
		Op:   "projectfinder.findroot",
		Kind: domain.KindNotFound,
		Path: abs,
		Err:  domain.ErrNotFound,
	}
}

// SettingsPath returns <root>/.claude/settings.json.
func SettingsPath(root string) string {
	return filepath.Join(root, Marker, "settings.json")
}
