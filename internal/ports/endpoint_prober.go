package ports

import (
	"context"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

// EndpointProber checks that a preset's API endpoint answers.
type EndpointProber interface {
	Probe(ctx context.Context, baseURL, token string) (domain.ProbeResult, error)
}
