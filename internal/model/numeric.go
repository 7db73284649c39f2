package model

import (
	"strconv"
	"strings"
)

// ParseAmount converts user-entered numeric text into a float64.
// Input that fails to parse is treated as zero rather than an error, so a
// half-typed quantity never breaks a live recalculation. Currency symbols
// and thousands separators are tolerated.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseCount converts user-entered count text into a non-negative integer,
// with the same zero-on-failure behavior as ParseAmount.
func ParseCount(s string) int {
	n := int(ParseAmount(s))
	if n < 0 {
		return 0
	}
	return n
}
