package hardware

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadWarning describes a row that was skipped while loading a registry.
// Parse-level errors are isolated: one bad row never poisons the rest of
// the table.
type LoadWarning struct {
	Key    string
	Reason string
}

func (w LoadWarning) String() string {
	return fmt.Sprintf("hardware[%s]: %s", w.Key, w.Reason)
}

// table is the on-disk shape of a whole registry file, one row per
// mapping key; Key is promoted from the YAML mapping key rather than
// duplicated inside the value.
type table map[string]GpuSpec

// Registry is an ordered, immutable mapping of GPU key to GpuSpec. Order
// is the order rows appeared in the source table and is preserved for
// deterministic iteration.
type Registry struct {
	keys  []string
	specs map[string]GpuSpec
}

// Load parses a declarative YAML table into an ordered Registry. source
// identifies where these rows came from (bundled default or synced user
// cache) and is stamped onto every resulting GpuSpec.
func Load(r io.Reader, source Source) (*Registry, []LoadWarning, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("hardware: read source: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("hardware: parse yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return &Registry{specs: map[string]GpuSpec{}}, nil, nil
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("hardware: expected a mapping of key -> spec at the document root")
	}

	reg := &Registry{specs: make(map[string]GpuSpec, len(mapping.Content)/2)}
	var warnings []LoadWarning

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valNode := mapping.Content[i], mapping.Content[i+1]
		key := keyNode.Value

		var spec GpuSpec
		if err := valNode.Decode(&spec); err != nil {
			warnings = append(warnings, LoadWarning{Key: key, Reason: fmt.Sprintf("malformed row: %v", err)})
			continue
		}
		spec.Key = key
		spec.Source = source

		if err := validateSpec(spec); err != nil {
			warnings = append(warnings, LoadWarning{Key: key, Reason: err.Error()})
			continue
		}

		if _, dup := reg.specs[key]; dup {
			warnings = append(warnings, LoadWarning{Key: key, Reason: "duplicate key, keeping first occurrence"})
			continue
		}

		reg.specs[key] = spec
		reg.keys = append(reg.keys, key)
	}

	return reg, warnings, nil
}

func validateSpec(s GpuSpec) error {
	if s.Key == "" {
		return fmt.Errorf("missing key")
	}
	if s.VRAMGB <= 0 {
		return fmt.Errorf("vram_gb must be positive")
	}
	switch s.Vendor {
	case VendorNVIDIA, VendorAMD, VendorIntel, VendorApple:
	default:
		return fmt.Errorf("unknown vendor %q", s.Vendor)
	}
	return nil
}

// Merge layers an override registry (e.g. synced user cache) on top of a
// base registry (the bundled default). Overriding rows fully replace the
// base row; base-only rows are kept; order is base order followed by any
// override-only rows in their own order.
func Merge(base, override *Registry) *Registry {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}
	out := &Registry{specs: make(map[string]GpuSpec, len(base.specs)+len(override.specs))}
	for _, k := range base.keys {
		if s, ok := override.specs[k]; ok {
			out.specs[k] = s
		} else {
			out.specs[k] = base.specs[k]
		}
		out.keys = append(out.keys, k)
	}
	for _, k := range override.keys {
		if _, already := out.specs[k]; !already {
			out.specs[k] = override.specs[k]
			out.keys = append(out.keys, k)
		}
	}
	return out
}

// Iter returns every spec in insertion order, for browse views.
func (r *Registry) Iter() []GpuSpec {
	if r == nil {
		return nil
	}
	out := make([]GpuSpec, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.specs[k])
	}
	return out
}

// Count returns the number of specs in the registry.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Vendors returns the distinct vendors present, in first-seen order.
func (r *Registry) Vendors() []Vendor {
	if r == nil {
		return nil
	}
	seen := map[Vendor]bool{}
	var out []Vendor
	for _, k := range r.keys {
		v := r.specs[k].Vendor
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Get looks up a spec by its exact canonical key.
func (r *Registry) Get(key string) (GpuSpec, bool) {
	if r == nil {
		return GpuSpec{}, false
	}
	s, ok := r.specs[key]
	return s, ok
}

// normalize lowercases the input and strips separators. It's used
// everywhere a GPU name needs comparing -- CLI args, hub renderer
// strings, and search -- so the rule only lives in one place.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	return s
}

// Find performs a fuzzy lookup: exact key, exact normalized name,
// substring on normalized key, substring on normalized name, in that
// priority order, breaking ties by shortest key (most specific). It
// never panics; a miss returns ok=false.
func (r *Registry) Find(input string) (GpuSpec, bool) {
	if r == nil || input == "" {
		return GpuSpec{}, false
	}

	// 1. Exact key.
	if s, ok := r.specs[input]; ok {
		return s, true
	}

	norm := normalize(input)

	// 2. Exact normalized name.
	if s, ok := r.bestMatch(func(s GpuSpec) bool {
		return normalize(s.Name) == norm
	}); ok {
		return s, true
	}

	// 3. Substring on normalized key.
	if s, ok := r.bestMatch(func(s GpuSpec) bool {
		return strings.Contains(normalize(s.Key), norm)
	}); ok {
		return s, true
	}

	// 4. Substring on normalized name.
	if s, ok := r.bestMatch(func(s GpuSpec) bool {
		return strings.Contains(normalize(s.Name), norm)
	}); ok {
		return s, true
	}

	return GpuSpec{}, false
}

// bestMatch returns the shortest-key match satisfying pred, preserving
// deterministic tie-breaking (shortest key wins as the most specific
// match).
func (r *Registry) bestMatch(pred func(GpuSpec) bool) (GpuSpec, bool) {
	var best GpuSpec
	found := false
	for _, k := range r.keys {
		s := r.specs[k]
		if !pred(s) {
			continue
		}
		if !found || len(s.Key) < len(best.Key) || (len(s.Key) == len(best.Key) && s.Key < best.Key) {
			best = s
			found = true
		}
	}
	return best, found
}
