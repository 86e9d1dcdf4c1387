// Package model defines the normalized Model record the parser produces
// from raw model-hub JSON.
//
// Model records are owned by their caller: they reference provider names
// as plain strings and never cycle back into the hardware/cloud
// registries, so a Model can be held, copied, and compared freely
// without touching process-wide registry state.
package model

// Tristate represents an optional boolean where the absence of
// information is distinct from false, e.g. for a field like
// supports_structured that the hub may simply never have reported.
type Tristate int

const (
	Unknown Tristate = iota
	Yes
	No
)

// ProviderStatus is the closed set of hub-reported provider states.
type ProviderStatus string

const (
	StatusLive    ProviderStatus = "live"
	StatusStaging ProviderStatus = "staging"
	StatusUnknown ProviderStatus = "unknown"
)

// Readiness is the derived classification of a ProviderBinding. It is
// never stored — always computed from the binding's current fields.
type Readiness string

const (
	ReadinessUnavailable Readiness = "unavailable"
	ReadinessHot         Readiness = "hot"
	ReadinessWarm        Readiness = "warm"
	ReadinessCold        Readiness = "cold"
)

// ProviderBinding is one inference-provider entry attached to a Model.
// Pricing/perf fields are only populated when the hub's enriched search
// payload supplied them — their absence means "unknown", never zero, so
// aggregation code (pkg/cost) must treat a nil pointer as "skip" rather
// than "free".
type ProviderBinding struct {
	Name             string
	Status           ProviderStatus
	Task             string
	ProviderModelID  string

	// Populated only from the enriched search response shape; the
	// minimal shape never carries pricing/perf data.
	InputPrice        *float64 // USD per 1M tokens
	OutputPrice       *float64 // USD per 1M tokens
	Throughput        *float64 // tok/s
	LatencyS          *float64 // time to first token
	ContextWindow     *int
	SupportsTools     Tristate
	SupportsStructured Tristate
}

// Readiness derives this binding's readiness classification: unavailable
// if status isn't live; hot if both latency and throughput are known;
// warm if exactly one is known; cold otherwise.
func (b ProviderBinding) Readiness() Readiness {
	if b.Status != StatusLive {
		return ReadinessUnavailable
	}
	known := 0
	if b.LatencyS != nil {
		known++
	}
	if b.Throughput != nil {
		known++
	}
	switch known {
	case 2:
		return ReadinessHot
	case 1:
		return ReadinessWarm
	default:
		return ReadinessCold
	}
}

// Model is the normalized, hub-derived model record.
type Model struct {
	ID             string
	PipelineTag    string
	LibraryName    string
	License        string
	Tags           []string

	Likes             int
	Downloads         int
	InferenceStatus   string

	// SafetensorsParams is nil when unknown — never zero. Missing is
	// unknown, not zero.
	SafetensorsParams *int64

	Providers []ProviderBinding
}

// ShortName returns the part of the model id after the last '/', used by
// both variant clustering (pkg/variant) and the param-hint regex
// (pkg/parser).
func (m Model) ShortName() string {
	for i := len(m.ID) - 1; i >= 0; i-- {
		if m.ID[i] == '/' {
			return m.ID[i+1:]
		}
	}
	return m.ID
}

// Org returns the part of the model id before the last '/', or "" if the
// id has no organization prefix.
func (m Model) Org() string {
	for i := len(m.ID) - 1; i >= 0; i-- {
		if m.ID[i] == '/' {
			return m.ID[:i]
		}
	}
	return ""
}

// Provider looks up a binding by provider name.
func (m Model) Provider(name string) (ProviderBinding, bool) {
	for _, p := range m.Providers {
		if p.Name == name {
			return p, true
		}
	}
	return ProviderBinding{}, false
}
