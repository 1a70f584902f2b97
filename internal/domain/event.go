package domain

import "time"

// EventKind identifies what happened.
type EventKind string

const (
	EventPresetApplied    EventKind = "preset.applied"
	EventPresetsSaved     EventKind = "presets.saved"
	EventMenuRefreshed    EventKind = "menu.refreshed"
	EventSettingsRestored EventKind = "settings.restored"
)

// Origin tells subscribers which front end triggered an event.
type Origin string

const (
	OriginApp  Origin = "app"
	OriginMenu Origin = "menu"
)

// Event is published by use cases after a successful state change.
type Event struct {
	Kind   EventKind
	Origin Origin
	Preset string
	Menu   *Menu
	At     time.Time
}
