package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestProviderBinding_Readiness(t *testing.T) {
	both := ProviderBinding{Status: StatusLive, LatencyS: f64(0.2), Throughput: f64(50)}
	assert.Equal(t, ReadinessHot, both.Readiness())

	one := ProviderBinding{Status: StatusLive, LatencyS: f64(0.2)}
	assert.Equal(t, ReadinessWarm, one.Readiness())

	neither := ProviderBinding{Status: StatusLive}
	assert.Equal(t, ReadinessCold, neither.Readiness())

	staging := ProviderBinding{Status: StatusStaging, LatencyS: f64(0.2), Throughput: f64(50)}
	assert.Equal(t, ReadinessUnavailable, staging.Readiness())
}

func TestModel_ShortNameAndOrg(t *testing.T) {
	m := Model{ID: "meta-llama/Llama-3.1-70B-Instruct"}
	assert.Equal(t, "Llama-3.1-70B-Instruct", m.ShortName())
	assert.Equal(t, "meta-llama", m.Org())

	noOrg := Model{ID: "gpt2"}
	assert.Equal(t, "gpt2", noOrg.ShortName())
	assert.Equal(t, "", noOrg.Org())
}

func TestModel_ProviderLookup(t *testing.T) {
	m := Model{Providers: []ProviderBinding{{Name: "together"}, {Name: "fireworks"}}}
	p, ok := m.Provider("fireworks")
	assert.True(t, ok)
	assert.Equal(t, "fireworks", p.Name)

	_, ok = m.Provider("nonexistent")
	assert.False(t, ok)
}

func TestTrending_OrdersByLikesThenDownloadsThenID(t *testing.T) {
	models := []Model{
		{ID: "b", Likes: 10, Downloads: 999},
		{ID: "a", Likes: 10, Downloads: 999},
		{ID: "c", Likes: 50, Downloads: 1},
		{ID: "d", Likes: 5, Downloads: 5000},
	}
	ranked := Trending(models)
	ids := make([]string, len(ranked))
	for i, m := range ranked {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids)

	// Trending must not mutate the input slice order.
	assert.Equal(t, "b", models[0].ID)
}
