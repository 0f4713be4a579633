package utils

import (
	"strconv"
)

// StringToUint parses a URL parameter as an ID, returning 0 for anything
// that is not a positive integer.
func StringToUint(s string) uint {
	i, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(i)
}
