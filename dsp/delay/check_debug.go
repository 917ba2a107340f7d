//go:build dspdebug

package delay

import "fmt"

// checkDelay fails fast on an out-of-range read in debug builds.
func checkDelay(samplesAgo, size int) int {
	if samplesAgo < 0 || samplesAgo >= size {
		panic(fmt.Sprintf("delay: read back %d samples on a line of %d", samplesAgo, size))
	}

	return samplesAgo
}
