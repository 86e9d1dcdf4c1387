// Package parser turns raw model-hub JSON into a normalized
// model.Model. It never fails a whole record over an unrecognized or
// missing field: unknown fields are preserved as "unknown" (a nil
// pointer, an empty string) and never corrupt the fields that did parse.
//
// Fields are pulled out with github.com/tidwall/gjson rather than
// unmarshalled into a rigid struct tree, so a JSON document the hub
// extends tomorrow still parses today's known fields without error.
package parser

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/hfproviders/hfp/pkg/model"
)

// ErrMissingID is returned when the document has no usable "id" field;
// every other parse failure is absorbed per-field instead.
var ErrMissingID = fmt.Errorf("parser: document has no id field")

// Parse converts one raw model-hub JSON document into a model.Model.
func Parse(raw []byte) (*model.Model, error) {
	root := gjson.ParseBytes(raw)

	id := root.Get("id").String()
	if id == "" {
		return nil, ErrMissingID
	}

	m := &model.Model{
		ID:              id,
		PipelineTag:     root.Get("pipeline_tag").String(),
		LibraryName:     root.Get("library_name").String(),
		Likes:           int(root.Get("likes").Int()),
		Downloads:       int(root.Get("downloads").Int()),
		InferenceStatus: root.Get("inference").String(),
		License:         resolveLicense(root),
	}

	for _, t := range root.Get("tags").Array() {
		if s := t.String(); s != "" {
			m.Tags = append(m.Tags, s)
		}
	}

	if total := root.Get("safetensors.total"); total.Exists() {
		v := total.Int()
		m.SafetensorsParams = &v
	}

	m.Providers = parseProviderMapping(root.Get("inferenceProviderMapping"))

	return m, nil
}

// resolveLicense checks cardData.license first, then the first
// "license:*" tag, then falls back to "" (unknown).
func resolveLicense(root gjson.Result) string {
	if l := root.Get("cardData.license"); l.Exists() && l.String() != "" {
		return l.String()
	}
	for _, t := range root.Get("tags").Array() {
		s := t.String()
		if strings.HasPrefix(s, "license:") {
			return strings.TrimPrefix(s, "license:")
		}
	}
	return ""
}

// parseProviderMapping accepts both shapes the hub emits:
//  1. a list of per-provider records carrying full performance/pricing
//     fields (the enriched search payload)
//  2. a mapping keyed by provider name with minimal fields
//
// Both normalize into the same []model.ProviderBinding; callers never
// see which shape the document used.
func parseProviderMapping(node gjson.Result) []model.ProviderBinding {
	if !node.Exists() {
		return nil
	}

	var bindings []model.ProviderBinding
	if node.IsArray() {
		for _, rec := range node.Array() {
			bindings = append(bindings, parseEnrichedBinding(rec))
		}
		return bindings
	}

	if node.IsObject() {
		node.ForEach(func(name, rec gjson.Result) bool {
			bindings = append(bindings, parseMinimalBinding(name.String(), rec))
			return true
		})
		return bindings
	}

	return nil
}

// parseMinimalBinding handles shape 2: a mapping keyed by provider name
// with only status/task/providerId — no pricing or perf data.
func parseMinimalBinding(name string, rec gjson.Result) model.ProviderBinding {
	return model.ProviderBinding{
		Name:            name,
		Status:          parseStatus(rec.Get("status").String()),
		Task:            rec.Get("task").String(),
		ProviderModelID: firstNonEmpty(rec.Get("providerId").String(), rec.Get("provider_model_id").String()),
	}
}

// parseEnrichedBinding handles shape 1: a per-provider record carrying
// full pricing/perf fields, only present in the enriched search payload.
func parseEnrichedBinding(rec gjson.Result) model.ProviderBinding {
	b := model.ProviderBinding{
		Name:            firstNonEmpty(rec.Get("provider").String(), rec.Get("name").String()),
		Status:          parseStatus(rec.Get("status").String()),
		Task:            rec.Get("task").String(),
		ProviderModelID: firstNonEmpty(rec.Get("providerId").String(), rec.Get("provider_model_id").String()),
	}

	if v := rec.Get("input_price"); v.Exists() {
		f := v.Float()
		b.InputPrice = &f
	}
	if v := rec.Get("output_price"); v.Exists() {
		f := v.Float()
		b.OutputPrice = &f
	}
	if v := rec.Get("throughput"); v.Exists() {
		f := v.Float()
		b.Throughput = &f
	}
	if v := rec.Get("latency_s"); v.Exists() {
		f := v.Float()
		b.LatencyS = &f
	}
	if v := rec.Get("context_window"); v.Exists() {
		n := int(v.Int())
		b.ContextWindow = &n
	}
	b.SupportsTools = parseTristate(rec.Get("supports_tools"))
	b.SupportsStructured = parseTristate(rec.Get("supports_structured"))

	return b
}

func parseStatus(s string) model.ProviderStatus {
	switch s {
	case string(model.StatusLive):
		return model.StatusLive
	case string(model.StatusStaging):
		return model.StatusStaging
	default:
		return model.StatusUnknown
	}
}

func parseTristate(v gjson.Result) model.Tristate {
	if !v.Exists() {
		return model.Unknown
	}
	switch {
	case v.Type == gjson.True:
		return model.Yes
	case v.Type == gjson.False:
		return model.No
	}
	switch strings.ToLower(v.String()) {
	case "yes", "true":
		return model.Yes
	case "no", "false":
		return model.No
	default:
		return model.Unknown
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
