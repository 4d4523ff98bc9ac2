package sceneconfig

import (
	"encoding/json"
	"strings"
)

// promoteNumber reproduces the source format's numeric literal promotion
// rule: a literal with no decimal point and no exponent marker parses as an
// integer; any other numeric literal parses as a float. encoding/json's
// json.Number carries the literal text, so the promotion is a string
// inspection rather than a reparse.
func promoteNumber(n json.Number) (asInt int64, asFloat float64, isInt bool) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		f, _ := n.Float64()
		return 0, f, false
	}
	i, err := n.Int64()
	if err != nil {
		f, _ := n.Float64()
		return 0, f, false
	}
	return i, 0, true
}

// asFloat32 coerces any promoted JSON number to a float32, regardless of
// whether it promoted to int64 or float64. Scene configuration fields
// (positions, rotations, colors, intensities) are always consumed as
// floats, so the int/float distinction only matters for round-tripping the
// literal, not for binding.
func asFloat32(n json.Number) float32 {
	i, f, isInt := promoteNumber(n)
	if isInt {
		return float32(i)
	}
	return float32(f)
}
