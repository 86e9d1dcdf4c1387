// Package cloud provides the priced cloud-GPU-offering registry. An
// Offering binds a provider's rentable configuration to a
// hardware.GpuSpec key; the cloud registry never embeds the hardware
// spec itself, only its key, keeping the two registries independently
// loadable and independently syncable.
package cloud

// Offering is a priced cloud GPU configuration.
type Offering struct {
	Key      string   `yaml:"-"`
	Provider string   `yaml:"provider"`
	Name     string   `yaml:"name"`
	GPU      string   `yaml:"gpu"`
	GPUCount int      `yaml:"gpu_count"`
	PriceHr  float64  `yaml:"price_hr"`
	SpotHr   *float64 `yaml:"spot_hr,omitempty"`

	Region        []string `yaml:"region,omitempty"`
	Interconnect  string   `yaml:"interconnect,omitempty"`
	URL           string   `yaml:"url,omitempty"`
}

// TotalPriceHr is price_hr * gpu_count, the single place this
// multiplication is defined so the cost calculator (pkg/cost) and
// ForGPU's sort never drift apart.
func (o Offering) TotalPriceHr() float64 {
	return o.PriceHr * float64(o.GPUCount)
}

// TotalSpotHr is the spot equivalent of TotalPriceHr; ok is false when
// the offering has no spot pricing.
func (o Offering) TotalSpotHr() (float64, bool) {
	if o.SpotHr == nil {
		return 0, false
	}
	return *o.SpotHr * float64(o.GPUCount), true
}
