package eventbus

import (
	"sync"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

const defaultBufferSize = 16

var _ ports.EventPublisher = (*Broker)(nil)

// Broker fans domain events out to buffered subscriber channels. A slow
// subscriber misses events instead of blocking the publisher.
type Broker struct {
	mu         sync.RWMutex
	subs       map[chan domain.Event]map[domain.EventKind]struct{}
	bufferSize int
	dropped    int
}

type Option func(*Broker)

func WithBufferSize(n int) Option {
	return func(b *Broker) {
		if n > 0 {
			b.bufferSize = n
		}
	}
}

func NewBroker(opts ...Option) *Broker {
	b := &Broker{
		subs:       make(map[chan domain.Event]map[domain.EventKind]struct{}),
		bufferSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe returns a channel receiving the given kinds, or every kind when
// none are given.
func (b *Broker) Subscribe(kinds ...domain.EventKind) <-chan domain.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan domain.Event, b.bufferSize)
	var filter map[domain.EventKind]struct{}
	if len(kinds) > 0 {
		filter = make(map[domain.EventKind]struct{}, len(kinds))
		for _, k := range kinds {
			filter[k] = struct{}{}
		}
	}
	b.subs[ch] = filter
	return ch
}

// Unsubscribe removes the subscription and closes its channel.
func (b *Broker) Unsubscribe(sub <-chan domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		if ch == sub {
			delete(b.subs, ch)
			close(ch)
			return
		}
	}
}

func (b *Broker) Publish(ev domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch, filter := range b.subs {
		if filter != nil {
			if _, ok := filter[ev.Kind]; !ok {
				continue
			}
		}
		select {
		case ch <- ev:
		default:
			b.dropped++
		}
	}
}

// Dropped reports how many deliveries were skipped because a subscriber's
// buffer was full.
func (b *Broker) Dropped() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}

// Close removes all subscriptions.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		close(ch)
	}
	b.subs = make(map[chan domain.Event]map[domain.EventKind]struct{})
}
