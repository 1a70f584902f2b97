package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

type memSettings struct {
	s       *domain.Settings
	readErr error
	writes  int
}

func newMemSettings(env domain.Vars) *memSettings {
	s := domain.NewSettings()
	for k, v := range env {
		s.Env[k] = v
	}
	return &memSettings{s: &s}
}

func (m *memSettings) Read() (domain.Settings, error) {
	if m.readErr != nil {
		return domain.Settings{}, m.readErr
	}
	if m.s == nil {
		return domain.Settings{}, &domain.OpError{Op: "mem.read", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return m.s.Clone(), nil
}

func (m *memSettings) Write(s domain.Settings) error {
	cp := s.Clone()
	m.s = &cp
	m.writes++
	return nil
}

func (m *memSettings) Path() string { return "/mem/settings.json" }

type memPresets struct {
	presets []domain.Preset
	saves   int
	saveErr error
}

func (m *memPresets) List() ([]domain.Preset, error) {
	out := make([]domain.Preset, len(m.presets))
	copy(out, m.presets)
	return out, nil
}

func (m *memPresets) SaveAll(p []domain.Preset) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.presets = make([]domain.Preset, len(p))
	copy(m.presets, p)
	m.saves++
	return nil
}

type memBackups struct {
	snaps  map[string]domain.Settings
	order  []string
	pruned []int
	fail   bool
}

func newMemBackups() *memBackups {
	return &memBackups{snaps: map[string]domain.Settings{}}
}

func (m *memBackups) Snapshot(s domain.Settings) (domain.BackupRef, error) {
	if m.fail {
		return domain.BackupRef{}, errors.New("disk full")
	}
	id := fmt.Sprintf("b%03d", len(m.order)+1)
	m.snaps[id] = s.Clone()
	m.order = append(m.order, id)
	return domain.BackupRef{ID: id}, nil
}

func (m *memBackups) List() ([]domain.BackupRef, error) {
	ids := append([]string(nil), m.order...)
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
	out := make([]domain.BackupRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.BackupRef{ID: id})
	}
	return out, nil
}

func (m *memBackups) Load(id string) (domain.Settings, error) {
	s, ok := m.snaps[id]
	if !ok {
		return domain.Settings{}, &domain.OpError{Op: "mem.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return s.Clone(), nil
}

func (m *memBackups) Prune(keep int) error {
	m.pruned = append(m.pruned, keep)
	return nil
}

type recorder struct {
	events []domain.Event
}

func (r *recorder) Publish(ev domain.Event) { r.events = append(r.events, ev) }

func (r *recorder) kinds() []domain.EventKind {
	out := make([]domain.EventKind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

type stubProber struct {
	gotBase, gotToken string
}

func (s *stubProber) Probe(_ context.Context, baseURL, token string) (domain.ProbeResult, error) {
	s.gotBase, s.gotToken = baseURL, token
	return domain.ProbeResult{URL: baseURL + "/v1/models", Reachable: true, Authorized: true, StatusCode: 200}, nil
}

func preset(name, token, base string) domain.Preset {
	return domain.Preset{
		Name:                       name,
		AuthToken:                  token,
		BaseURL:                    base,
		MaxOutputTokens:            "32000",
		DisableNonessentialTraffic: "1",
	}
}
