// Package domain contains the core model for claudeswitch: presets, the AI
// client's settings document, configuration status and the quick-switch menu.
//
// The domain does not depend on JSON/YAML parsing, net/http, or the filesystem.
// Infra adapters map into/from these types.
package domain
