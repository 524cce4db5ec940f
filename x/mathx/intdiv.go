package mathx

// RoundDiv divides rounding half away from zero, the fixed-point
// equivalent of roundf. b must be positive; b <= 0 yields 0.
func RoundDiv[T ~int | ~int16 | ~int32 | ~int64](a, b T) T {
	if b <= 0 {
		return 0
	}
	if a < 0 {
		return -((-a + b/2) / b)
	}
	return (a + b/2) / b
}
