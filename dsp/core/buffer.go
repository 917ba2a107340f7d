package core

// FrameCount returns the common length of the channel slices in bufs. It
// reports false if the lengths differ. An empty set has zero frames.
func FrameCount(bufs [][]float64) (int, bool) {
	if len(bufs) == 0 {
		return 0, true
	}

	n := len(bufs[0])
	for _, ch := range bufs[1:] {
		if len(ch) != n {
			return 0, false
		}
	}

	return n, true
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	clear(buf)
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	return copy(dst, src)
}
