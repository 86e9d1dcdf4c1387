package estimate

import "github.com/hfproviders/hfp/pkg/hardware"

// BestQuantResult is the outcome of scanning every quant in fit priority.
type BestQuantResult struct {
	Quant    Quant
	Estimate Estimate
	// Fits is false when no quant achieved FitFull with positive decode;
	// Estimate then reports the requested quant's (failing) result so
	// callers can still show why nothing worked.
	Fits bool
}

// BestQuant iterates {FP16, Q8, Q4} in fit priority and returns the
// highest-precision quant that still fits and achieves positive decode
// throughput. If none fits, it returns the result for requested with
// Fits=false, so callers can still report why nothing worked.
func BestQuant(gpu hardware.GpuSpec, params int64, runtime Runtime, requested Quant) (BestQuantResult, error) {
	return BestQuantCluster(gpu, params, runtime, requested, 1)
}

// BestQuantCluster is BestQuant generalized to gpuCount parallel GPUs (see
// RunCluster).
func BestQuantCluster(gpu hardware.GpuSpec, params int64, runtime Runtime, requested Quant, gpuCount int) (BestQuantResult, error) {
	var fallback Estimate
	haveFallback := false

	for _, q := range Quants() {
		est, err := RunCluster(gpu, params, q, runtime, gpuCount)
		if err != nil {
			return BestQuantResult{}, err
		}
		if q == requested {
			fallback = est
			haveFallback = true
		}
		if est.Fit == FitFull && est.DecodeTokS > 0 {
			return BestQuantResult{Quant: q, Estimate: est, Fits: true}, nil
		}
	}

	if !haveFallback {
		// requested wasn't in the scanned set (shouldn't happen for the
		// closed Quant enum, but stay defensive rather than panic).
		fallback, _ = RunCluster(gpu, params, requested, runtime, gpuCount)
	}
	return BestQuantResult{Quant: requested, Estimate: fallback, Fits: false}, nil
}
