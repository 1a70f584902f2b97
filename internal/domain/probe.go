package domain

import "time"

// ProbeResult is the outcome of checking a preset's endpoint.
type ProbeResult struct {
	URL        string
	StatusCode int
	Latency    time.Duration

	// Reachable is true when any HTTP response came back.
	Reachable bool
	// Authorized is true for a 2xx response.
	Authorized bool

	Message string
}
