// Package core implements the reconciliation engine: per-row parsing and
// normalization, the project fold, derived metrics and the query surface.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a free-text monetary string into a number.
//
// Currency symbols and thousands separators are stripped before parsing
// ("$1,200.50" -> 1200.50). Empty or unparsable input yields 0; the result
// is never NaN or infinite. This is a total function over all strings.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseImages parses an image count. Unlike amounts there is no currency
// noise to strip; failures report ok=false so the caller can keep the
// current maximum.
func parseImages(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
