//go:build js && wasm

// Package wasmhost bridges the pure functions of pkg/estimate, pkg/cost,
// pkg/hardware, pkg/cloud, and pkg/snippet to a browser SPA over
// syscall/js. Data registries are pre-serialized as JSON alongside the
// module; only the model hub JSON is fetched live.
//
// Every exported JS function here takes and returns JSON strings rather
// than js.Value object graphs, keeping the boundary at serialized bytes
// instead of in-memory structures that would need manual reflection
// through the syscall/js API on both sides.
package wasmhost

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/hfproviders/hfp/pkg/cloud"
	"github.com/hfproviders/hfp/pkg/cost"
	"github.com/hfproviders/hfp/pkg/estimate"
	"github.com/hfproviders/hfp/pkg/hardware"
	"github.com/hfproviders/hfp/pkg/snippet"
)

// host holds the registries loaded once via Init and queried by every
// later call. The browser owns the lifetime of the wasm instance, so a
// package-level var (rather than a value threaded through js.Value) is
// the natural fit here.
var host struct {
	hw    *hardware.Registry
	cloud *cloud.Registry
}

// Register installs every bridge function onto the JS global object
// under the "hfp" namespace. Call this once from the wasm entry point's
// main() before blocking forever with an empty select (the standard
// wasm_exec.js pattern).
func Register() {
	ns := js.Global().Get("Object").New()
	ns.Set("init", js.FuncOf(jsInit))
	ns.Set("findGPU", js.FuncOf(jsFindGPU))
	ns.Set("estimate", js.FuncOf(jsEstimate))
	ns.Set("bestQuant", js.FuncOf(jsBestQuant))
	ns.Set("cloudOffers", js.FuncOf(jsCloudOffers))
	ns.Set("cost", js.FuncOf(jsCost))
	ns.Set("snippet", js.FuncOf(jsSnippet))
	js.Global().Set("hfp", ns)
}

// jsInit(hardwareJSON, cloudJSON string) -> string (error message, "" on success)
func jsInit(_ js.Value, args []js.Value) any {
	if len(args) != 2 {
		return "init requires (hardwareJSON, cloudJSON)"
	}
	hw, _, err := hardware.Load(stringsReader(args[0].String()), hardware.SourceBundled)
	if err != nil {
		return fmt.Sprintf("parse hardware registry: %v", err)
	}
	cr, _, err := cloud.Load(stringsReader(args[1].String()), hw)
	if err != nil {
		return fmt.Sprintf("parse cloud registry: %v", err)
	}
	host.hw = hw
	host.cloud = cr
	return ""
}

// jsFindGPU(query string) -> JSON GpuSpec or "null"
func jsFindGPU(_ js.Value, args []js.Value) any {
	if len(args) != 1 {
		return "null"
	}
	spec, ok := host.hw.Find(args[0].String())
	if !ok {
		return "null"
	}
	return toJSON(spec)
}

// jsEstimate(gpuKey, quant, runtime string, params string) -> JSON {estimate, error}
func jsEstimate(_ js.Value, args []js.Value) any {
	if len(args) != 4 {
		return toJSON(estimateResult{Error: "estimate requires (gpuKey, quant, runtime, params)"})
	}
	gpu, ok := host.hw.Get(args[0].String())
	if !ok {
		gpu, ok = host.hw.Find(args[0].String())
	}
	if !ok {
		return toJSON(estimateResult{Error: "unknown gpu"})
	}
	params, err := strconv.ParseInt(args[3].String(), 10, 64)
	if err != nil {
		return toJSON(estimateResult{Error: "invalid params"})
	}
	est, err := estimate.Run(gpu, params, estimate.Quant(args[1].String()), estimate.Runtime(args[2].String()))
	if err != nil {
		return toJSON(estimateResult{Error: err.Error()})
	}
	return toJSON(estimateResult{Estimate: &est})
}

type estimateResult struct {
	Estimate *estimate.Estimate `json:"estimate,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// jsBestQuant(gpuKey string, params string) -> JSON BestQuantResult or {"error": ...}
func jsBestQuant(_ js.Value, args []js.Value) any {
	if len(args) != 2 {
		return toJSON(map[string]string{"error": "bestQuant requires (gpuKey, params)"})
	}
	gpu, ok := host.hw.Get(args[0].String())
	if !ok {
		gpu, ok = host.hw.Find(args[0].String())
	}
	if !ok {
		return toJSON(map[string]string{"error": "unknown gpu"})
	}
	params, err := strconv.ParseInt(args[1].String(), 10, 64)
	if err != nil {
		return toJSON(map[string]string{"error": "invalid params"})
	}
	result, err := estimate.BestQuant(gpu, params, estimate.RuntimeLlamaCpp, estimate.FP16)
	if err != nil {
		return toJSON(map[string]string{"error": err.Error()})
	}
	return toJSON(result)
}

// jsCloudOffers(gpuKey string) -> JSON []cloud.Offering
func jsCloudOffers(_ js.Value, args []js.Value) any {
	if len(args) != 1 {
		return "[]"
	}
	return toJSON(host.cloud.ForGPU(args[0].String()))
}

// jsCost(mode, gpuKey string, decodeTokS string, rate string) -> JSON {costPerM, ok}
// rate is price_hr for mode "cloud" and the electricity rate in USD/kWh
// for mode "local".
func jsCost(_ js.Value, args []js.Value) any {
	if len(args) != 4 {
		return toJSON(map[string]any{"ok": false})
	}
	decodeTokS, _ := strconv.ParseFloat(args[2].String(), 64)

	switch args[0].String() {
	case "cloud":
		priceHr, _ := strconv.ParseFloat(args[3].String(), 64)
		v, ok := cost.Cloud(cloud.Offering{PriceHr: priceHr, GPUCount: 1}, decodeTokS)
		return toJSON(map[string]any{"costPerM": v, "ok": ok})
	case "local":
		gpu, ok := host.hw.Get(args[1].String())
		if !ok {
			return toJSON(map[string]any{"ok": false})
		}
		rate, _ := strconv.ParseFloat(args[3].String(), 64)
		v, ok := cost.Local(gpu, decodeTokS, rate)
		return toJSON(map[string]any{"costPerM": v, "ok": ok})
	default:
		return toJSON(map[string]any{"ok": false})
	}
}

// jsSnippet(modelID, provider, lang string) -> string
func jsSnippet(_ js.Value, args []js.Value) any {
	if len(args) != 3 {
		return ""
	}
	return snippet.Generate(args[0].String(), args[1].String(), snippet.Language(args[2].String()))
}

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
