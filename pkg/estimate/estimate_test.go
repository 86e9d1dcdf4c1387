package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfproviders/hfp/pkg/hardware"
)

func rtx4090() hardware.GpuSpec {
	return hardware.GpuSpec{
		Key: "rtx_4090", Name: "GeForce RTX 4090", Vendor: hardware.VendorNVIDIA,
		VRAMGB: 24, MemBWGBs: 1008, FP16TFLOPs: 165, TDPWatts: 450,
	}
}

func m4Max128() hardware.GpuSpec {
	return hardware.GpuSpec{
		Key: "m4_max_128", Name: "Apple M4 Max 128GB", Vendor: hardware.VendorApple,
		VRAMGB: 128, MemBWGBs: 546, FP16TFLOPs: 36.9, TDPWatts: 80,
		EfficiencyFactors: hardware.EfficiencyFactors{MLXDecodeEff: 0.58, MLXPrefillEff: 0.25},
	}
}

func TestRun_RTX4090_7BQ4LlamaCpp_MatchesCalibratedThroughput(t *testing.T) {
	est, err := Run(rtx4090(), 7_000_000_000, Q4, RuntimeLlamaCpp)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, est.WeightGB, 0.01)
	assert.Equal(t, FitFull, est.Fit)
	assert.InDelta(t, 260, est.DecodeTokS, 260*0.15)
	assert.InDelta(t, 4100, est.PrefillTokS, 4100*0.15)
}

func TestRun_M4Max128_7BQ4MLX_MatchesCalibratedThroughput(t *testing.T) {
	est, err := Run(m4Max128(), 7_000_000_000, Q4, RuntimeMLX)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, est.WeightGB, 0.01)
	assert.Equal(t, FitFull, est.Fit)
	assert.InDelta(t, 90, est.DecodeTokS, 5)
	assert.InDelta(t, 659, est.PrefillTokS, 10)
}

func TestRun_671BQ4OnRTX4090_DoesNotFit(t *testing.T) {
	est, err := Run(rtx4090(), 671_000_000_000, Q4, RuntimeLlamaCpp)
	require.NoError(t, err)
	assert.InDelta(t, 335.5, est.WeightGB, 1)
	assert.Equal(t, FitNoFit, est.Fit)
	assert.Zero(t, est.DecodeTokS)
}

func TestRun_MLXOnNonAppleIsUnsupported(t *testing.T) {
	_, err := Run(rtx4090(), 7_000_000_000, Q4, RuntimeMLX)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRun_MLXOnUncalibratedAppleChipIsUnsupported(t *testing.T) {
	chip := hardware.GpuSpec{Key: "m4_pro", Vendor: hardware.VendorApple, VRAMGB: 48, MemBWGBs: 273, FP16TFLOPs: 17}
	_, err := Run(chip, 7_000_000_000, Q4, RuntimeMLX)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRun_ZeroParamsIsNoFitNotPanic(t *testing.T) {
	est, err := Run(rtx4090(), 0, Q4, RuntimeLlamaCpp)
	require.NoError(t, err)
	assert.Equal(t, FitNoFit, est.Fit)
	assert.Zero(t, est.DecodeTokS)
}

// Invariant 1: fit is monotone in quant.
func TestInvariant_FitMonotoneInQuant(t *testing.T) {
	gpu := rtx4090()
	params := int64(20_000_000_000)
	fp16, err := Run(gpu, params, FP16, RuntimeLlamaCpp)
	require.NoError(t, err)
	q8, err := Run(gpu, params, Q8, RuntimeLlamaCpp)
	require.NoError(t, err)
	q4, err := Run(gpu, params, Q4, RuntimeLlamaCpp)
	require.NoError(t, err)

	if fp16.Fit == FitFull {
		assert.Equal(t, FitFull, q8.Fit)
	}
	if q8.Fit == FitFull {
		assert.Equal(t, FitFull, q4.Fit)
	}
}

// Invariant 2: weight identity.
func TestInvariant_WeightIdentity(t *testing.T) {
	gpu := rtx4090()
	params := int64(7_000_000_000)
	fp16, _ := Run(gpu, params, FP16, RuntimeLlamaCpp)
	q8, _ := Run(gpu, params, Q8, RuntimeLlamaCpp)
	q4, _ := Run(gpu, params, Q4, RuntimeLlamaCpp)

	assert.InDelta(t, 0.25, q4.WeightGB/fp16.WeightGB, 1e-9)
	assert.InDelta(t, 0.5, q8.WeightGB/fp16.WeightGB, 1e-9)
}

// Invariant 3: throughput monotone in bandwidth.
func TestInvariant_DecodeMonotoneInBandwidth(t *testing.T) {
	slow := rtx4090()
	fast := rtx4090()
	fast.MemBWGBs = slow.MemBWGBs * 2

	params := int64(7_000_000_000)
	slowEst, _ := Run(slow, params, Q4, RuntimeLlamaCpp)
	fastEst, _ := Run(fast, params, Q4, RuntimeLlamaCpp)

	assert.Greater(t, fastEst.DecodeTokS, slowEst.DecodeTokS)
}

// Invariant 4: prefill monotone in TFLOPS.
func TestInvariant_PrefillMonotoneInTFLOPS(t *testing.T) {
	slow := rtx4090()
	fast := rtx4090()
	fast.FP16TFLOPs = slow.FP16TFLOPs * 2

	params := int64(7_000_000_000)
	slowEst, _ := Run(slow, params, Q4, RuntimeLlamaCpp)
	fastEst, _ := Run(fast, params, Q4, RuntimeLlamaCpp)

	assert.Greater(t, fastEst.PrefillTokS, slowEst.PrefillTokS)
}

func TestBestQuant_PicksHighestPrecisionThatFits(t *testing.T) {
	gpu := rtx4090() // 24GB usable ~20.4GB
	result, err := BestQuant(gpu, 7_000_000_000, RuntimeLlamaCpp, Q4)
	require.NoError(t, err)
	assert.True(t, result.Fits)
	// 7B at FP16 = 14GB <= 20.4GB so FP16 should be picked (highest precision).
	assert.Equal(t, FP16, result.Quant)
}

func TestBestQuant_NoneFitsReturnsRequestedWithFitsFalse(t *testing.T) {
	gpu := rtx4090()
	result, err := BestQuant(gpu, 671_000_000_000, RuntimeLlamaCpp, Q4)
	require.NoError(t, err)
	assert.False(t, result.Fits)
	assert.Equal(t, Q4, result.Quant)
	assert.Equal(t, FitNoFit, result.Estimate.Fit)
}

func TestMachineReport_Partitions(t *testing.T) {
	report, err := RunMachineReport(rtx4090())
	require.NoError(t, err)
	assert.NotEmpty(t, report.WontRun, "671B should not fit a 24GB card")
	total := len(report.Comfortable) + len(report.Tight) + len(report.WontRun)
	assert.Equal(t, len(ReferenceModels()), total)
}

func TestAllowedRuntimes(t *testing.T) {
	assert.Equal(t, []Runtime{RuntimeLlamaCpp}, AllowedRuntimes(rtx4090()))
	assert.Equal(t, []Runtime{RuntimeMLX, RuntimeLlamaCpp}, AllowedRuntimes(m4Max128()))
}
