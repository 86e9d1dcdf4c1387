// Package variant implements variant-clustering glue: finding sibling
// models from the same organization as a target model.
package variant

import (
	"strings"

	"github.com/hfproviders/hfp/pkg/model"
)

// roleSuffixes are stripped before comparing base names.
var roleSuffixes = []string{"-Instruct", "-it", "-Chat"}

// quantMarkers identify quantization repacks, which are never reported
// as variants even when the base name matches.
var quantMarkers = []string{"GGUF", "AWQ", "GPTQ", "EXL2", "MLX", "fp8", "BF16"}

// StripRoleSuffix removes a single known role suffix from name, if
// present, matching case-insensitively on the suffix itself.
func StripRoleSuffix(name string) string {
	lower := strings.ToLower(name)
	for _, suf := range roleSuffixes {
		if strings.HasSuffix(lower, strings.ToLower(suf)) {
			return name[:len(name)-len(suf)]
		}
	}
	return name
}

// IsQuantRepack reports whether name contains a quantization-repack
// marker.
func IsQuantRepack(name string) bool {
	for _, marker := range quantMarkers {
		if strings.Contains(strings.ToLower(name), strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// baseNameMatches reports whether a and b are the same base name after
// stripping role suffixes, or one is a hyphen-prefix of the other.
func baseNameMatches(a, b string) bool {
	sa, sb := StripRoleSuffix(a), StripRoleSuffix(b)
	if sa == sb {
		return true
	}
	return strings.HasPrefix(sa, sb+"-") || strings.HasPrefix(sb, sa+"-")
}

// Cluster returns every model in candidates that is a variant of target:
// same organization, a matching stripped base name, and not a
// quantization repack. target itself is never returned.
func Cluster(target model.Model, candidates []model.Model) []model.Model {
	targetOrg := target.Org()
	targetBase := target.ShortName()

	var out []model.Model
	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}
		if c.Org() != targetOrg {
			continue
		}
		shortName := c.ShortName()
		if IsQuantRepack(shortName) {
			continue
		}
		if baseNameMatches(shortName, targetBase) {
			out = append(out, c)
		}
	}
	return out
}
