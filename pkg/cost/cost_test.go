package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hfproviders/hfp/pkg/cloud"
	"github.com/hfproviders/hfp/pkg/hardware"
)

func TestAPI_UnknownPriceExcluded(t *testing.T) {
	_, ok := API(nil)
	assert.False(t, ok)

	price := 2.5
	got, ok := API(&price)
	assert.True(t, ok)
	assert.InDelta(t, 2.5, got, 1e-9)
}

func TestCloud_EightGPUOffering_NormalizesToCostPerMillionTokens(t *testing.T) {
	off := cloud.Offering{PriceHr: 2.50, GPUCount: 8}
	got, ok := Cloud(off, 400)
	assert.True(t, ok)
	assert.InDelta(t, 13.89, got, 0.01)
}

func TestLocal_450WGPU_NormalizesToCostPerMillionTokens(t *testing.T) {
	gpu := hardware.GpuSpec{TDPWatts: 450}
	got, ok := Local(gpu, 90, 0.15)
	assert.True(t, ok)
	assert.InDelta(t, 0.167, got, 0.001)
}

func TestInvariant_CloudCostMonotoneInPrice(t *testing.T) {
	cheap := cloud.Offering{PriceHr: 1.0, GPUCount: 1}
	pricey := cloud.Offering{PriceHr: 2.0, GPUCount: 1}

	cheapCost, _ := Cloud(cheap, 100)
	priceyCost, _ := Cloud(pricey, 100)
	assert.Greater(t, priceyCost, cheapCost)
}

func TestInvariant_LocalCostMonotoneInTDP(t *testing.T) {
	low := hardware.GpuSpec{TDPWatts: 200}
	high := hardware.GpuSpec{TDPWatts: 450}

	lowCost, _ := Local(low, 90, 0.15)
	highCost, _ := Local(high, 90, 0.15)
	assert.Greater(t, highCost, lowCost)
}

func TestCloud_ZeroDecodeExcluded(t *testing.T) {
	_, ok := Cloud(cloud.Offering{PriceHr: 1, GPUCount: 1}, 0)
	assert.False(t, ok)
}

func TestBreakEven(t *testing.T) {
	tokens, ok := BreakEven(2000, 10, 1)
	assert.True(t, ok)
	// delta = 9 / 1e6 per token => tokens = 2000 / (9e-6) ≈ 222,222,222
	assert.InDelta(t, 222222222, tokens, 1)
}

func TestBreakEven_NotReportedWhenLocalNotCheaper(t *testing.T) {
	_, ok := BreakEven(2000, 1, 1)
	assert.False(t, ok)

	_, ok = BreakEven(2000, 1, 5)
	assert.False(t, ok)
}

func TestCheapest_SortsAscendingTieBreaksOnLabel(t *testing.T) {
	options := []Option{
		{Mode: ModeAPI, Label: "z-provider", CostPerM: 1.0},
		{Mode: ModeCloud, Label: "a-provider", CostPerM: 1.0},
		{Mode: ModeLocal, Label: "local-gpu", CostPerM: 0.5},
	}
	got := Cheapest(options)
	assert.Equal(t, "local-gpu", got[0].Label)
	assert.Equal(t, "a-provider", got[1].Label)
	assert.Equal(t, "z-provider", got[2].Label)
}
