package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type presetView struct {
	Name                       string `json:"name"`
	AuthToken                  string `json:"auth_token"`
	BaseURL                    string `json:"base_url"`
	MaxOutputTokens            string `json:"max_output_tokens"`
	DisableNonessentialTraffic string `json:"disable_nonessential_traffic"`
	Active                     bool   `json:"active"`
}

func viewPreset(p domain.Preset, current *domain.Preset, mask func(string) string) presetView {
	return presetView{
		Name:                       p.Name,
		AuthToken:                  mask(p.AuthToken),
		BaseURL:                    p.BaseURL,
		MaxOutputTokens:            p.MaxOutputTokens,
		DisableNonessentialTraffic: p.DisableNonessentialTraffic,
		Active:                     current != nil && domain.SameConnection(p, *current),
	}
}

// printPresets renders the catalog. current may be nil when the live
// settings are unreadable.
func printPresets(w io.Writer, presets []domain.Preset, current *domain.Preset, mask func(string) string, format string) error {
	views := make([]presetView, 0, len(presets))
	for _, p := range presets {
		views = append(views, viewPreset(p, current, mask))
	}

	if format == formatJSON {
		return writeJSON(w, views)
	}

	if len(views) == 0 {
		fmt.Fprintln(w, "(no presets saved)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tNAME\tBASE URL\tTOKEN\tMAX TOKENS\tTRAFFIC OFF")
	for _, v := range views {
		marker := " "
		if v.Active {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			marker, v.Name, v.BaseURL, dash(v.AuthToken), v.MaxOutputTokens, v.DisableNonessentialTraffic)
	}
	return tw.Flush()
}

func printPreset(w io.Writer, v presetView) {
	fmt.Fprintf(w, "Name:        %s\n", v.Name)
	fmt.Fprintf(w, "Base URL:    %s\n", dash(v.BaseURL))
	fmt.Fprintf(w, "Token:       %s\n", dash(v.AuthToken))
	fmt.Fprintf(w, "Max tokens:  %s\n", dash(v.MaxOutputTokens))
	fmt.Fprintf(w, "Traffic off: %s\n", dash(v.DisableNonessentialTraffic))
}

type statusView struct {
	Path       string `json:"path"`
	Configured bool   `json:"configured"`
	HasToken   bool   `json:"has_token"`
	HasBaseURL bool   `json:"has_base_url"`
	Message    string `json:"message"`
}

func printStatus(w io.Writer, path string, st domain.ConfigStatus, format string) error {
	v := statusView{
		Path:       path,
		Configured: st.Configured,
		HasToken:   st.HasToken,
		HasBaseURL: st.HasBaseURL,
		Message:    st.Message,
	}
	if format == formatJSON {
		return writeJSON(w, v)
	}

	fmt.Fprintf(w, "Settings: %s\n", v.Path)
	fmt.Fprintf(w, "Status:   %s\n", v.Message)
	fmt.Fprintf(w, "Token:    %s\n", yesNo(v.HasToken))
	fmt.Fprintf(w, "Base URL: %s\n", yesNo(v.HasBaseURL))
	return nil
}

type menuItemView struct {
	ID      string `json:"id,omitempty"`
	Label   string `json:"label"`
	Kind    string `json:"kind"`
	Enabled bool   `json:"enabled"`
	Active  bool   `json:"active,omitempty"`
}

func printMenu(w io.Writer, m domain.Menu, format string) error {
	if format == formatJSON {
		items := make([]menuItemView, 0, len(m.Items))
		for _, it := range m.Items {
			items = append(items, menuItemView{
				ID:      it.ID,
				Label:   it.Label,
				Kind:    string(it.Kind),
				Enabled: it.Enabled,
				Active:  it.Active,
			})
		}
		return writeJSON(w, items)
	}

	for _, it := range m.Items {
		switch it.Kind {
		case domain.MenuSeparator:
			fmt.Fprintln(w, strings.Repeat("─", 24))
		case domain.MenuPreset:
			fmt.Fprintf(w, "  %s  [%s]\n", it.Label, it.ID)
		default:
			fmt.Fprintln(w, it.Label)
		}
	}
	return nil
}

func printSettings(w io.Writer, s domain.Settings, mask func(string) string, format string) error {
	env := make(map[string]string, len(s.Env))
	for k, v := range s.Env {
		if k == domain.EnvAuthToken {
			v = mask(v)
		}
		env[k] = v
	}

	v := map[string]any{
		"env":         env,
		"permissions": s.Permissions,
	}
	if s.FeedbackSurveyState != nil {
		v["feedbackSurveyState"] = s.FeedbackSurveyState
	}
	if format == formatJSON {
		return writeJSON(w, v)
	}

	keys := slices.Sorted(maps.Keys(env))
	fmt.Fprintln(w, "env:")
	if len(keys) == 0 {
		fmt.Fprintln(w, "  (empty)")
	}
	for _, k := range keys {
		fmt.Fprintf(w, "  %s=%s\n", k, env[k])
	}

	fmt.Fprintln(w, "permissions:")
	if len(s.Permissions) == 0 {
		fmt.Fprintln(w, "  (empty)")
	}
	for _, k := range slices.Sorted(maps.Keys(s.Permissions)) {
		fmt.Fprintf(w, "  %s: %s\n", k, strings.Join(s.Permissions[k], ", "))
	}

	if len(s.Extra) > 0 {
		fmt.Fprintf(w, "other keys: %s\n", strings.Join(slices.Sorted(maps.Keys(s.Extra)), ", "))
	}
	return nil
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
