package ports

import "github.com/aalvaropc/claudeswitch/internal/domain"

// EventPublisher fans out state changes to interested front ends.
type EventPublisher interface {
	Publish(ev domain.Event)
}
