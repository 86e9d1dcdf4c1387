package cost

import (
	"sort"

	"github.com/hfproviders/hfp/pkg/cloud"
	"github.com/hfproviders/hfp/pkg/hardware"
)

// API passes an already-$/1M-tokens API output price through unchanged.
// A nil outputPrice means unknown and is excluded — never treated as
// free.
func API(outputPrice *float64) (float64, bool) {
	if outputPrice == nil {
		return 0, false
	}
	return *outputPrice, true
}

// Cloud computes $/1M output tokens for a rented offering given the
// estimator's decode throughput for the best-quant pick on that offering.
// Assumes 100% utilization — documented as a floor, not a realistic
// steady-state number.
func Cloud(offering cloud.Offering, decodeTokS float64) (float64, bool) {
	if decodeTokS <= 0 {
		return 0, false
	}
	pricePerHour := offering.TotalPriceHr()
	return pricePerHour * outputTokensPerUnit / (decodeTokS * secondsPerHour), true
}

// Local computes $/1M output tokens for electricity alone, excluding
// hardware purchase. elecRate is USD/kWh; pass
// DefaultElectricityRateUSDPerKWh when the caller hasn't configured one.
func Local(gpu hardware.GpuSpec, decodeTokS, elecRate float64) (float64, bool) {
	if decodeTokS <= 0 {
		return 0, false
	}
	powerKW := gpu.TDPWatts * localPowerDrawFraction / 1000
	return powerKW * elecRate * outputTokensPerUnit / (decodeTokS * secondsPerHour), true
}

// BreakEven computes how many generated output tokens it takes for a
// local GPU's purchase price to pay for itself versus the cheapest API
// alternative. Reported only when apiCostPerM > localCostPerM — ok is
// false otherwise, since a local GPU that isn't even cheaper per token
// never breaks even.
func BreakEven(purchasePriceUSD, apiCostPerM, localCostPerM float64) (tokens float64, ok bool) {
	if apiCostPerM <= localCostPerM {
		return 0, false
	}
	deltaPerToken := (apiCostPerM - localCostPerM) / outputTokensPerUnit
	return purchasePriceUSD / deltaPerToken, true
}

// Cheapest sorts options ascending by CostPerM, ties broken by label so
// ordering stays deterministic across runs.
func Cheapest(options []Option) []Option {
	out := make([]Option, len(options))
	copy(out, options)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CostPerM != out[j].CostPerM {
			return out[i].CostPerM < out[j].CostPerM
		}
		return out[i].Label < out[j].Label
	})
	return out
}
