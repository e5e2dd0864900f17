package util

import (
	"strconv"
)

// MustParseUint converts a string to an unsigned integer, returning 0
// when parsing fails.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ClampScore bounds a raw grader score to [0,100]. The scoring engine
// assumes this has already happened.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
