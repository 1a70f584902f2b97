package usecase

import (
	"context"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// ProbePreset checks that a preset's endpoint answers with its credentials.
type ProbePreset struct {
	presets  ports.PresetStore
	settings ports.SettingsStore
	prober   ports.EndpointProber
}

func NewProbePreset(presets ports.PresetStore, settings ports.SettingsStore, prober ports.EndpointProber) *ProbePreset {
	return &ProbePreset{presets: presets, settings: settings, prober: prober}
}

// Execute probes the named preset. An empty name or "Current Config" probes
// the live settings.
func (uc *ProbePreset) Execute(ctx context.Context, name string) (domain.ProbeResult, error) {
	p, err := uc.resolve(name)
	if err != nil {
		return domain.ProbeResult{}, err
	}
	return uc.prober.Probe(ctx, p.BaseURL, p.AuthToken)
}

func (uc *ProbePreset) resolve(name string) (domain.Preset, error) {
	if name == "" || name == domain.CurrentPresetName {
		s, err := uc.settings.Read()
		if err != nil {
			return domain.Preset{}, err
		}
		return domain.PresetFromSettings(s), nil
	}

	presets, err := uc.presets.List()
	if err != nil {
		return domain.Preset{}, err
	}
	i, ok := domain.FindPreset(presets, name)
	if !ok {
		return domain.Preset{}, notFound("presets.probe", name)
	}
	return presets[i], nil
}
