package settingsfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

// Query evaluates a JSONPath expression (e.g. "$.env.ANTHROPIC_BASE_URL")
// against the raw settings document.
func (s *Store) Query(expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "settingsfile.query",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty jsonpath expression"),
		}
	}
	if !strings.HasPrefix(expr, "$") {
		expr = "$." + strings.TrimPrefix(expr, ".")
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{Op: "settingsfile.query", Kind: kind, Path: s.path, Err: err}
	}

	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &domain.OpError{Op: "settingsfile.query", Kind: domain.KindInvalidConfig, Path: s.path, Err: err}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "settingsfile.query",
			Kind: domain.KindNotFound,
			Path: s.path,
			Err:  fmt.Errorf("jsonpath %s: %w", expr, err),
		}
	}
	return val, nil
}
