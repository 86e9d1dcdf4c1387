package parser

import (
	"regexp"
	"strconv"
)

var paramHintPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)([BMK])`)

var paramHintScale = map[byte]float64{
	'B': 1_000_000_000,
	'M': 1_000_000,
	'K': 1_000,
}

// ParamHint attempts to parse a `\d+(\.\d+)?[BMK]` parameter-count hint
// out of a model's short name, used only when no safetensors_params is
// available. Returns the numeric value in raw parameter count and
// ok=true on a match.
func ParamHint(shortName string) (int64, bool) {
	match := paramHintPattern.FindStringSubmatch(shortName)
	if match == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	unit := match[2][0]
	if unit >= 'a' && unit <= 'z' {
		unit -= 'a' - 'A'
	}
	scale, ok := paramHintScale[unit]
	if !ok {
		return 0, false
	}
	return int64(value * scale), true
}
