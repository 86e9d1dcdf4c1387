package cloud

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/hfproviders/hfp/pkg/hardware"
)

// LoadWarning describes an offering row that was dropped while loading.
type LoadWarning struct {
	Key    string
	Reason string
}

func (w LoadWarning) String() string {
	return fmt.Sprintf("cloud[%s]: %s", w.Key, w.Reason)
}

// Registry is an ordered, immutable mapping of offering key to Offering.
type Registry struct {
	keys      []string
	offerings map[string]Offering
}

// Load parses a declarative YAML table of cloud offerings, validating
// every `gpu` reference against hw. Offerings whose gpu key does not
// resolve are dropped with a warning, as are malformed rows, rows with a
// non-positive price_hr, and repeats of an already-loaded key.
func Load(r io.Reader, hw *hardware.Registry) (*Registry, []LoadWarning, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("cloud: read source: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("cloud: parse yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return &Registry{offerings: map[string]Offering{}}, nil, nil
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("cloud: expected a mapping of key -> offering at the document root")
	}

	reg := &Registry{offerings: make(map[string]Offering, len(mapping.Content)/2)}
	var warnings []LoadWarning

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valNode := mapping.Content[i], mapping.Content[i+1]
		key := keyNode.Value

		var off Offering
		if err := valNode.Decode(&off); err != nil {
			warnings = append(warnings, LoadWarning{Key: key, Reason: fmt.Sprintf("malformed row: %v", err)})
			continue
		}
		off.Key = key

		if off.GPUCount < 1 {
			off.GPUCount = 1
		}
		if off.PriceHr <= 0 {
			warnings = append(warnings, LoadWarning{Key: key, Reason: "price_hr must be positive"})
			continue
		}
		if _, ok := hw.Get(off.GPU); !ok {
			warnings = append(warnings, LoadWarning{Key: key, Reason: fmt.Sprintf("unresolved gpu key %q", off.GPU)})
			continue
		}
		if _, dup := reg.offerings[key]; dup {
			warnings = append(warnings, LoadWarning{Key: key, Reason: "duplicate key, keeping first occurrence"})
			continue
		}

		reg.offerings[key] = off
		reg.keys = append(reg.keys, key)
	}

	return reg, warnings, nil
}

// Merge layers an override registry (e.g. synced user cache) on top of a
// base registry (the bundled default), the same way hardware.Merge does:
// overriding rows fully replace the base row, base-only rows survive, and
// override-only rows are appended in their own order.
func Merge(base, override *Registry) *Registry {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}
	out := &Registry{offerings: make(map[string]Offering, len(base.offerings)+len(override.offerings))}
	for _, k := range base.keys {
		if o, ok := override.offerings[k]; ok {
			out.offerings[k] = o
		} else {
			out.offerings[k] = base.offerings[k]
		}
		out.keys = append(out.keys, k)
	}
	for _, k := range override.keys {
		if _, already := out.offerings[k]; !already {
			out.offerings[k] = override.offerings[k]
			out.keys = append(out.keys, k)
		}
	}
	return out
}

// Iter returns every offering in insertion order.
func (r *Registry) Iter() []Offering {
	if r == nil {
		return nil
	}
	out := make([]Offering, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.offerings[k])
	}
	return out
}

// Count returns the number of offerings in the registry.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Get looks up an offering by its exact key.
func (r *Registry) Get(key string) (Offering, bool) {
	if r == nil {
		return Offering{}, false
	}
	o, ok := r.offerings[key]
	return o, ok
}

// ForGPU returns every offering referencing gpuKey, sorted by
// TotalPriceHr ascending, ties broken by key string.
func (r *Registry) ForGPU(gpuKey string) []Offering {
	if r == nil {
		return nil
	}
	var out []Offering
	for _, k := range r.keys {
		o := r.offerings[k]
		if o.GPU == gpuKey {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].TotalPriceHr(), out[j].TotalPriceHr()
		if pi != pj {
			return pi < pj
		}
		return out[i].Key < out[j].Key
	})
	return out
}
