// Package scoring holds the completion and quiz arithmetic shared by the
// progress and quiz services.
package scoring

// Percent returns part/total as a whole percentage, rounding half up.
// A non-positive total yields 0 rather than a division fault (empty quizzes
// and courses with no lessons hit this). The result is capped to [0, 100].
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	if part < 0 {
		part = 0
	}
	pct := (part*100*2 + total) / (total * 2)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
