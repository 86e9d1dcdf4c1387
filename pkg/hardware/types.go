// Package hardware provides the GPU/accelerator registry: a declarative,
// immutable table of hardware specs keyed by a canonical id, with fuzzy
// lookup by alias.
//
// The registry is loaded once from a declarative YAML table (bundled
// default, optionally overridden by a synced user-cache copy) and is safe
// for concurrent reads from every goroutine thereafter; nothing here
// mutates a Registry after Load returns it.
//
// Example Usage:
//
//	reg, warnings, err := hardware.Load(r, hardware.SourceBundled)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, w := range warnings {
//		log.Printf("hardware registry: %s", w)
//	}
//
//	spec, ok := reg.Find("RTX-4090")
//	if !ok {
//		fmt.Println("no such GPU")
//	}
package hardware

// Vendor is the closed set of hardware vendors the registry recognizes.
type Vendor string

const (
	VendorNVIDIA Vendor = "nvidia"
	VendorAMD    Vendor = "amd"
	VendorIntel  Vendor = "intel"
	VendorApple  Vendor = "apple"
)

// Source records which layer of the registry a spec was loaded from, so
// callers (notably `sync`) can report what got overridden.
type Source string

const (
	SourceBundled Source = "bundled"
	SourceCache   Source = "cache"
)

// EfficiencyFactors holds the empirical, runtime-specific efficiency
// factors used by the estimation engine (pkg/estimate). A zero value for
// any field means "not calibrated for this runtime": for mlx the
// estimator declines to produce an estimate rather than default silently
// to 1.0; for llama.cpp it applies its default factors instead.
type EfficiencyFactors struct {
	MLXDecodeEff       float64 `yaml:"mlx_decode_eff,omitempty"`
	MLXPrefillEff      float64 `yaml:"mlx_prefill_eff,omitempty"`
	LlamaCppDecodeEff  float64 `yaml:"llamacpp_decode_eff,omitempty"`
	LlamaCppPrefillEff float64 `yaml:"llamacpp_prefill_eff,omitempty"`
}

// GpuSpec is an immutable hardware record: a GPU, accelerator, or Apple
// Silicon chip/memory-configuration pair.
type GpuSpec struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	Vendor Vendor `yaml:"vendor"`
	Arch   string `yaml:"arch"`

	VRAMGB     float64 `yaml:"vram_gb"`
	MemBWGBs   float64 `yaml:"mem_bw_gb_s"`
	FP16TFLOPs float64 `yaml:"fp16_tflops"`
	TDPWatts   float64 `yaml:"tdp_w"`

	// StreetUSD is the optional retail price; zero means unknown.
	StreetUSD float64 `yaml:"street_usd,omitempty"`

	EfficiencyFactors `yaml:",inline"`

	Source Source `yaml:"-"`
}

// IsApple reports whether this spec is an Apple Silicon chip — the only
// vendor allowed to be queried with the mlx runtime.
func (g GpuSpec) IsApple() bool {
	return g.Vendor == VendorApple
}

// HasMLXFactors reports whether this spec was calibrated for the mlx
// runtime. Only Apple chips populating these factors may be queried with
// runtime=mlx.
func (g GpuSpec) HasMLXFactors() bool {
	return g.MLXDecodeEff > 0 && g.MLXPrefillEff > 0
}

// HasLlamaCppFactors reports whether this spec was calibrated for
// llama.cpp. Non-Apple GPUs rely on the estimator's default factor when
// this is false (see pkg/estimate).
func (g GpuSpec) HasLlamaCppFactors() bool {
	return g.LlamaCppDecodeEff > 0 && g.LlamaCppPrefillEff > 0
}
