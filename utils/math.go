package utils

// SafeDivide divides num by den, returning def when den is zero. It never
// returns an error.
func SafeDivide(num, den, def float64) float64 {
	if den == 0 {
		return def
	}
	return num / den
}
