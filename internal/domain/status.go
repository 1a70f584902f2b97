package domain

import "strings"

const (
	StatusReady          = "Configuration is complete and ready"
	StatusMissingBaseURL = "Missing API base URL"
	StatusMissingToken   = "Missing authentication token"
	StatusNotConfigured  = "No configuration found. Please set up your API credentials"
	StatusFileNotFound   = "Configuration file not found"
	StatusFileUnreadable = "Configuration file could not be read"
)

// ConfigStatus summarizes whether the client has usable API credentials.
type ConfigStatus struct {
	Configured bool
	HasToken   bool
	HasBaseURL bool
	Message    string
}

// EvaluateStatus inspects the live settings. Blank values count as missing.
func EvaluateStatus(s Settings) ConfigStatus {
	token, _ := Get(s.Env, EnvAuthToken)
	base, _ := Get(s.Env, EnvBaseURL)

	st := ConfigStatus{
		HasToken:   strings.TrimSpace(token) != "",
		HasBaseURL: strings.TrimSpace(base) != "",
	}
	st.Configured = st.HasToken && st.HasBaseURL

	switch {
	case st.Configured:
		st.Message = StatusReady
	case st.HasToken:
		st.Message = StatusMissingBaseURL
	case st.HasBaseURL:
		st.Message = StatusMissingToken
	default:
		st.Message = StatusNotConfigured
	}
	return st
}

// UnavailableStatus is reported when the settings file cannot be used at all.
func UnavailableStatus(missing bool) ConfigStatus {
	if missing {
		return ConfigStatus{Message: StatusFileNotFound}
	}
	return ConfigStatus{Message: StatusFileUnreadable}
}
