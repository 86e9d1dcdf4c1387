package estimate

import "github.com/hfproviders/hfp/pkg/hardware"

// For estimates only: params is the total parameter count, always
// positive for a meaningful estimate (params=0 is handled as a defined
// edge case below, not a panic).

// Run estimates VRAM fit and decode/prefill throughput for one (gpu,
// params, quant, runtime) combination.
//
// Run returns ErrUnsupported when runtime has no efficiency factor for
// gpu: mlx on any GPU that hasn't calibrated mlx_decode_eff/
// mlx_prefill_eff (which in practice means every non-Apple GPU, plus any
// Apple chip the hardware table hasn't calibrated yet).
func Run(gpu hardware.GpuSpec, params int64, quant Quant, runtime Runtime) (Estimate, error) {
	return RunCluster(gpu, params, quant, runtime, 1)
}

// RunCluster is Run generalized to gpuCount parallel GPUs of the same
// spec, the case a multi-GPU cloud.Offering describes: fit capacity
// scales with gpu_count ("weight_gb <= 0.85 * gpu.vram_gb * gpu_count")
// but decode/prefill throughput does not, so a cluster is only ever more
// forgiving on fit, never faster on paper.
func RunCluster(gpu hardware.GpuSpec, params int64, quant Quant, runtime Runtime, gpuCount int) (Estimate, error) {
	if gpuCount < 1 {
		gpuCount = 1
	}
	decodeEff, prefillEff, ok := efficiency(gpu, runtime)
	if !ok {
		return Estimate{}, ErrUnsupported
	}

	bpp := quant.BytesPerParam()
	weightGB := float64(params) * bpp / 1e9

	if params <= 0 {
		return Estimate{
			WeightGB: weightGB,
			Fit:      FitNoFit,
			Notes:    []string{"params must be positive"},
		}, nil
	}

	fit := FitNoFit
	if weightGB <= fitHeadroom*gpu.VRAMGB*float64(gpuCount) {
		fit = FitFull
	}

	est := Estimate{WeightGB: weightGB, Fit: fit}
	if fit != FitFull {
		return est, nil
	}

	if gpu.MemBWGBs > 0 && weightGB > 0 {
		est.DecodeTokS = gpu.MemBWGBs * decodeEff / weightGB
	}
	if gpu.FP16TFLOPs > 0 && params > 0 {
		est.PrefillTokS = gpu.FP16TFLOPs * prefillEff * 1e12 / (2 * float64(params))
	}
	return est, nil
}

// efficiency resolves the (decode, prefill) efficiency factors for
// (gpu, runtime), applying the llama.cpp defaults when the GPU spec
// doesn't carry its own calibration. ok is false when the combination is
// unsupported: mlx is valid only on Apple chips with calibrated factors.
func efficiency(gpu hardware.GpuSpec, runtime Runtime) (decode, prefill float64, ok bool) {
	switch runtime {
	case RuntimeMLX:
		if !gpu.IsApple() || !gpu.HasMLXFactors() {
			return 0, 0, false
		}
		return gpu.MLXDecodeEff, gpu.MLXPrefillEff, true
	case RuntimeLlamaCpp:
		if gpu.HasLlamaCppFactors() {
			return gpu.LlamaCppDecodeEff, gpu.LlamaCppPrefillEff, true
		}
		return DefaultLlamaCppDecodeEff, DefaultLlamaCppPrefillEff, true
	default:
		return 0, 0, false
	}
}

// AllowedRuntimes returns the runtimes a GPU may legally be queried with:
// Apple chips with mlx calibration accept both mlx and llama.cpp, every
// other GPU accepts only llama.cpp.
func AllowedRuntimes(gpu hardware.GpuSpec) []Runtime {
	if gpu.IsApple() && gpu.HasMLXFactors() {
		return []Runtime{RuntimeMLX, RuntimeLlamaCpp}
	}
	return []Runtime{RuntimeLlamaCpp}
}
