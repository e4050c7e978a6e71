package advanced

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Precondition shared by everything taking a buffer and a count.
func validCount(n, length int) bool {
	return assume(n >= 0 && n <= length, "invalid count %d for buffer of length %d", n, length)
}
