package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

func TestBroker_FiltersByKind(t *testing.T) {
	b := NewBroker()
	applied := b.Subscribe(domain.EventPresetApplied)
	all := b.Subscribe()

	b.Publish(domain.Event{Kind: domain.EventPresetsSaved})
	b.Publish(domain.Event{Kind: domain.EventPresetApplied, Preset: "Work", Origin: domain.OriginMenu})

	require.Len(t, applied, 1)
	ev := <-applied
	assert.Equal(t, "Work", ev.Preset)
	assert.Equal(t, domain.OriginMenu, ev.Origin)

	require.Len(t, all, 2)
	assert.Equal(t, domain.EventPresetsSaved, (<-all).Kind)
	assert.Equal(t, domain.EventPresetApplied, (<-all).Kind)
}

func TestBroker_DropsWhenFull(t *testing.T) {
	b := NewBroker(WithBufferSize(1))
	ch := b.Subscribe()

	b.Publish(domain.Event{Kind: domain.EventMenuRefreshed})
	b.Publish(domain.Event{Kind: domain.EventMenuRefreshed})

	assert.Len(t, ch, 1)
	assert.Equal(t, 1, b.Dropped())
}

func TestBroker_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(domain.EventPresetApplied, domain.EventPresetsSaved)

	b.Unsubscribe(ch)
	_, ok := <-ch
	assert.False(t, ok, "expected closed channel")

	// Publishing after unsubscribe must not panic.
	b.Publish(domain.Event{Kind: domain.EventPresetApplied})
	b.Unsubscribe(ch)
}

func TestBroker_Close(t *testing.T) {
	b := NewBroker()
	a := b.Subscribe()
	c := b.Subscribe(domain.EventSettingsRestored)

	b.Close()

	_, okA := <-a
	_, okC := <-c
	assert.False(t, okA)
	assert.False(t, okC)
}
