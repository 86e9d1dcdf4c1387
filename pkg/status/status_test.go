package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hfproviders/hfp/pkg/model"
)

func TestClassify_DelegatesToBindingReadiness(t *testing.T) {
	live := model.ProviderBinding{Status: model.StatusLive}
	assert.Equal(t, live.Readiness(), Classify(live))

	staging := model.ProviderBinding{Status: model.StatusStaging}
	assert.Equal(t, staging.Readiness(), Classify(staging))
}

func TestWatch_TickAppliesProbeAndReturnsReadiness(t *testing.T) {
	w := &Watch{Binding: model.ProviderBinding{Status: model.StatusStaging}}

	latency := 0.4
	r := w.Tick(Probe{Status: model.StatusLive, LatencyS: &latency})

	assert.Equal(t, model.StatusLive, w.Binding.Status)
	assert.Equal(t, &latency, w.Binding.LatencyS)
	assert.Equal(t, 1, w.Ticks)
	assert.Equal(t, Classify(w.Binding), r)
}

func TestWatch_TickAccumulatesAcrossCalls(t *testing.T) {
	w := &Watch{}
	w.Tick(Probe{Status: model.StatusStaging})
	w.Tick(Probe{Status: model.StatusLive})
	assert.Equal(t, 2, w.Ticks)
	assert.Equal(t, model.StatusLive, w.Binding.Status)
}

func TestProbe_ApplyDoesNotMutateCaller(t *testing.T) {
	original := model.ProviderBinding{Status: model.StatusStaging}
	p := Probe{Status: model.StatusLive}

	p.Apply(original)

	assert.Equal(t, model.StatusStaging, original.Status)
}
