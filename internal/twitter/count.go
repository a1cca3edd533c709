package twitter

import "strconv"

// Count bounds for a recent-tweet fetch.
const (
	MinCount     = 1
	MaxCount     = 10
	DefaultCount = 5
)

// ClampCount forces a requested count into [MinCount, MaxCount].
func ClampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// ParseCount reads a count from query or form input. Anything that is not
// a number falls back to DefaultCount; numbers are clamped.
func ParseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return DefaultCount
	}
	return ClampCount(n)
}
