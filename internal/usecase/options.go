package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// common carries the collaborators every use case may log or publish through.
type common struct {
	events ports.EventPublisher
	log    *slog.Logger
	now    func() time.Time
}

func newCommon() common {
	return common{
		events: nopPublisher{},
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
}

// Option configures the shared collaborators of a use case.
type Option func(*common)

// WithEvents publishes state changes to p.
func WithEvents(p ports.EventPublisher) Option {
	return func(c *common) {
		if p != nil {
			c.events = p
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *common) {
		if l != nil {
			c.log = l
		}
	}
}

func WithNow(now func() time.Time) Option {
	return func(c *common) {
		if now != nil {
			c.now = now
		}
	}
}

func (c *common) apply(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

func (c *common) publish(ev domain.Event) {
	if ev.At.IsZero() {
		ev.At = c.now().UTC()
	}
	c.events.Publish(ev)
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.Event) {}
