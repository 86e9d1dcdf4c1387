// Package status provides the pure readiness classifier the `status`
// CLI command drives. A live probe isn't wired in yet; this package only
// defines what it would feed into and what comes back out.
package status

import "github.com/hfproviders/hfp/pkg/model"

// Classify derives a provider binding's readiness. It is a thin, named
// wrapper around model.ProviderBinding.Readiness so CLI code importing
// pkg/status doesn't need to know that Readiness lives on the model
// package too.
func Classify(binding model.ProviderBinding) model.Readiness {
	return binding.Readiness()
}

// Probe is one measurement a live-status collaborator reports back after
// polling a provider.
type Probe struct {
	LatencyS   *float64
	Throughput *float64
	Status     model.ProviderStatus
}

// Apply returns the binding updated with this probe's measurements,
// leaving every other field untouched. It does not mutate binding.
func (p Probe) Apply(binding model.ProviderBinding) model.ProviderBinding {
	binding.Status = p.Status
	binding.LatencyS = p.LatencyS
	binding.Throughput = p.Throughput
	return binding
}

// Watch accumulates successive probes for one provider binding across a
// `--watch <secs>` polling loop. Tick is pure: the caller supplies the
// clock and the probe result, keeping every suspension point (the actual
// sleep, the actual network call) outside the core.
type Watch struct {
	Binding model.ProviderBinding
	Ticks   int
}

// Tick applies one probe result and returns the resulting readiness.
func (w *Watch) Tick(p Probe) model.Readiness {
	w.Binding = p.Apply(w.Binding)
	w.Ticks++
	return Classify(w.Binding)
}
