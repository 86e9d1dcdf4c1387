package regcache

import (
	"bytes"
	"fmt"

	"github.com/hfproviders/hfp/internal/bundled"
	"github.com/hfproviders/hfp/pkg/cloud"
	"github.com/hfproviders/hfp/pkg/hardware"
)

// LoadHardware builds the effective hardware registry by loading the
// embedded bundle and, if sync has populated one, layering the cached
// table on top: the cache overrides matching rows, bundle rows not
// present in the cache survive unchanged. c may be nil, meaning no cache
// is configured.
func (c *Cache) LoadHardware() (*hardware.Registry, []hardware.LoadWarning, error) {
	base, err := bundled.Hardware()
	if err != nil {
		return nil, nil, fmt.Errorf("regcache: load bundled hardware: %w", err)
	}
	baseReg, warnings, err := hardware.Load(bytes.NewReader(base), hardware.SourceBundled)
	if err != nil {
		return nil, nil, fmt.Errorf("regcache: parse bundled hardware: %w", err)
	}

	if c == nil {
		return baseReg, warnings, nil
	}
	cached, ok, err := c.Hardware()
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return baseReg, warnings, nil
	}

	overlayReg, overlayWarnings, err := hardware.Load(bytes.NewReader(cached), hardware.SourceCache)
	if err != nil {
		return nil, nil, fmt.Errorf("regcache: parse cached hardware: %w", err)
	}
	return hardware.Merge(baseReg, overlayReg), append(warnings, overlayWarnings...), nil
}

// LoadCloud builds the effective cloud-offering registry the same way
// LoadHardware does, validating every offering's gpu key against hw.
func (c *Cache) LoadCloud(hw *hardware.Registry) (*cloud.Registry, []cloud.LoadWarning, error) {
	base, err := bundled.Cloud()
	if err != nil {
		return nil, nil, fmt.Errorf("regcache: load bundled cloud: %w", err)
	}
	baseReg, warnings, err := cloud.Load(bytes.NewReader(base), hw)
	if err != nil {
		return nil, nil, fmt.Errorf("regcache: parse bundled cloud: %w", err)
	}

	if c == nil {
		return baseReg, warnings, nil
	}
	cached, ok, err := c.Cloud()
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return baseReg, warnings, nil
	}

	overlayReg, overlayWarnings, err := cloud.Load(bytes.NewReader(cached), hw)
	if err != nil {
		return nil, nil, fmt.Errorf("regcache: parse cached cloud: %w", err)
	}
	return cloud.Merge(baseReg, overlayReg), append(warnings, overlayWarnings...), nil
}
