package appconfig

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

//go:embed templates/config.yaml
var templatesFS embed.FS

// Init creates the home layout and writes a default config.yaml. An existing
// config is kept unless force is set. It reports whether config.yaml was written.
func Init(home string, force bool) (bool, error) {
	root := filepath.Clean(home)

	for _, d := range []string{root, filepath.Join(root, "logs"), filepath.Join(root, "backups")} {
		if err := os.MkdirAll(d, 0o700); err != nil {
			return false, &domain.OpError{Op: "appconfig.init", Kind: domain.KindExecution, Path: d, Err: err}
		}
	}

	dst := filepath.Join(root, ConfigFile)
	if !force {
		if _, err := os.Stat(dst); err == nil {
			return false, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return false, &domain.OpError{Op: "appconfig.init", Kind: domain.KindExecution, Path: dst, Err: err}
		}
	}

	b, err := fs.ReadFile(templatesFS, "templates/config.yaml")
	if err != nil {
		return false, &domain.OpError{Op: "appconfig.init", Kind: domain.KindExecution, Err: err}
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return false, &domain.OpError{Op: "appconfig.init", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return true, nil
}
