package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

const (
	modelsPath       = "/v1/models"
	anthropicVersion = "2023-06-01"
)

var _ ports.EndpointProber = (*Prober)(nil)

// Prober checks an API endpoint by listing its models.
type Prober struct {
	client  *http.Client
	timeout time.Duration
	now     func() time.Time
}

type Option func(*Prober)

// WithTimeout sets the per-probe timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) { p.timeout = timeout }
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) Option {
	return func(p *Prober) { p.client = client }
}

func WithNow(now func() time.Time) Option {
	return func(p *Prober) { p.now = now }
}

func NewProber(opts ...Option) *Prober {
	cfg := DefaultConfig()
	p := &Prober{
		client:  New(cfg),
		timeout: cfg.Timeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe issues GET <baseURL>/v1/models with the token. Transport failures
// are reported in the result (Reachable=false), not as errors; only a
// malformed base URL returns an error.
func (p *Prober) Probe(ctx context.Context, baseURL, token string) (domain.ProbeResult, error) {
	target, err := modelsURL(baseURL)
	if err != nil {
		return domain.ProbeResult{}, &domain.OpError{
			Op:   "httpclient.probe",
			Kind: domain.KindInvalidPreset,
			Err:  err,
		}
	}

	res := domain.ProbeResult{URL: target}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return res, &domain.OpError{Op: "httpclient.probe", Kind: domain.KindExecution, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("anthropic-version", anthropicVersion)
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("x-api-key", token)
	}

	start := p.now()
	resp, err := p.client.Do(req)
	res.Latency = p.now().Sub(start)
	if err != nil {
		res.Message = describeTransportError(err)
		return res, nil
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	res.Reachable = true
	res.StatusCode = resp.StatusCode
	res.Authorized = resp.StatusCode >= 200 && resp.StatusCode < 300

	switch {
	case res.Authorized:
		res.Message = "Endpoint reachable and credentials accepted"
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		res.Message = "Endpoint reachable but credentials were rejected"
	default:
		res.Message = fmt.Sprintf("Endpoint answered with HTTP %d", resp.StatusCode)
	}
	return res, nil
}

func modelsURL(baseURL string) (string, error) {
	raw := strings.TrimSpace(baseURL)
	if raw == "" {
		raw = domain.DefaultBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid base url %q: want an absolute http(s) URL", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + modelsPath
	u.RawQuery = ""
	return u.String(), nil
}

func describeTransportError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "Endpoint did not answer before the timeout"
	case errors.Is(err, context.Canceled):
		return "Probe was canceled"
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return "Endpoint did not answer before the timeout"
	}
	return "Endpoint unreachable: " + err.Error()
}
