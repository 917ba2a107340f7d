//go:build !dspdebug

package delay

// checkDelay clamps an out-of-range read to the valid range.
func checkDelay(samplesAgo, size int) int {
	if samplesAgo < 0 {
		return 0
	}

	if samplesAgo >= size {
		return size - 1
	}

	return samplesAgo
}
