package presetstore

import "github.com/aalvaropc/claudeswitch/internal/domain"

// jsonPreset is the on-disk shape of api-presets.json entries.
type jsonPreset struct {
	Name                       string `json:"name"`
	AuthToken                  string `json:"auth_token"`
	BaseURL                    string `json:"base_url"`
	MaxOutputTokens            string `json:"max_output_tokens"`
	DisableNonessentialTraffic string `json:"disable_nonessential_traffic"`
}

func toDTO(p domain.Preset) jsonPreset {
	return jsonPreset{
		Name:                       p.Name,
		AuthToken:                  p.AuthToken,
		BaseURL:                    p.BaseURL,
		MaxOutputTokens:            p.MaxOutputTokens,
		DisableNonessentialTraffic: p.DisableNonessentialTraffic,
	}
}

func fromDTO(p jsonPreset) domain.Preset {
	return domain.Preset{
		Name:                       p.Name,
		AuthToken:                  p.AuthToken,
		BaseURL:                    p.BaseURL,
		MaxOutputTokens:            p.MaxOutputTokens,
		DisableNonessentialTraffic: p.DisableNonessentialTraffic,
	}
}
