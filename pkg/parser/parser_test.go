package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfproviders/hfp/pkg/model"
)

const minimalShapeJSON = `{
	"id": "meta-llama/Llama-3.1-8B-Instruct",
	"pipeline_tag": "text-generation",
	"library_name": "transformers",
	"likes": 1200,
	"downloads": 500000,
	"inference": "warm",
	"tags": ["text-generation", "license:llama3.1", "conversational"],
	"safetensors": {"total": 8030000000},
	"inferenceProviderMapping": {
		"together": {"status": "live", "task": "text-generation", "providerId": "meta-llama/Llama-3.1-8B-Instruct-Turbo"},
		"fireworks-ai": {"status": "staging", "task": "conversational"}
	}
}`

const enrichedShapeJSON = `{
	"id": "meta-llama/Llama-3.1-8B-Instruct",
	"cardData": {"license": "llama3.1"},
	"inferenceProviderMapping": [
		{
			"provider": "together",
			"status": "live",
			"task": "text-generation",
			"provider_model_id": "meta-llama/Llama-3.1-8B-Instruct-Turbo",
			"input_price": 0.18,
			"output_price": 0.18,
			"throughput": 145.2,
			"latency_s": 0.31,
			"context_window": 131072,
			"supports_tools": true,
			"supports_structured": "unknown"
		},
		{
			"provider": "fireworks-ai",
			"status": "live",
			"task": "text-generation"
		}
	]
}`

func TestParse_MinimalShape(t *testing.T) {
	m, err := Parse([]byte(minimalShapeJSON))
	require.NoError(t, err)

	assert.Equal(t, "meta-llama/Llama-3.1-8B-Instruct", m.ID)
	assert.Equal(t, "text-generation", m.PipelineTag)
	assert.Equal(t, "llama3.1", m.License, "license from tag when cardData.license absent")
	require.NotNil(t, m.SafetensorsParams)
	assert.EqualValues(t, 8_030_000_000, *m.SafetensorsParams)

	require.Len(t, m.Providers, 2)
	together, ok := m.Provider("together")
	require.True(t, ok)
	assert.Equal(t, model.StatusLive, together.Status)
	assert.Nil(t, together.OutputPrice, "minimal shape never carries pricing")
	assert.Equal(t, model.ReadinessCold, together.Readiness(), "live but no latency/throughput known")
}

func TestParse_EnrichedShape(t *testing.T) {
	m, err := Parse([]byte(enrichedShapeJSON))
	require.NoError(t, err)

	assert.Equal(t, "llama3.1", m.License, "cardData.license takes priority")

	together, ok := m.Provider("together")
	require.True(t, ok)
	require.NotNil(t, together.OutputPrice)
	assert.InDelta(t, 0.18, *together.OutputPrice, 1e-9)
	assert.Equal(t, model.Yes, together.SupportsTools)
	assert.Equal(t, model.Unknown, together.SupportsStructured)
	assert.Equal(t, model.ReadinessHot, together.Readiness())

	fireworks, ok := m.Provider("fireworks-ai")
	require.True(t, ok)
	assert.Nil(t, fireworks.OutputPrice, "no pricing fields on this record means unknown, not zero")
}

func TestParse_MissingID(t *testing.T) {
	_, err := Parse([]byte(`{"pipeline_tag": "text-generation"}`))
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestParse_UnknownFieldsDoNotCorruptKnownOnes(t *testing.T) {
	doc := `{"id": "org/model", "totallyUnknownField": {"nested": [1,2,3]}, "likes": 5}`
	m, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "org/model", m.ID)
	assert.Equal(t, 5, m.Likes)
}

func TestParse_MissingSafetensorsIsNilNotZero(t *testing.T) {
	m, err := Parse([]byte(`{"id": "org/model"}`))
	require.NoError(t, err)
	assert.Nil(t, m.SafetensorsParams)
}

func TestParamHint(t *testing.T) {
	cases := []struct {
		name   string
		want   int64
		wantOK bool
	}{
		{"Llama-3.1-8B-Instruct", 8_000_000_000, true},
		{"Qwen2.5-0.5B", 500_000_000, true},
		{"bge-m3", 3, false},
		{"distilbert-base-560M", 560_000_000, true},
		{"no-hint-here", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParamHint(tc.name)
		assert.Equal(t, tc.wantOK, ok, tc.name)
		if tc.wantOK {
			assert.Equal(t, tc.want, got, tc.name)
		}
	}
}
