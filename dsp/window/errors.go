package window

import (
	"errors"
	"fmt"
	"math"
)

var errMismatchedLength = errors.New("window: samples and coefficients must have same length")

func validateKaiser(size int, beta float64) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}

	if beta < 0 || math.IsNaN(beta) {
		return fmt.Errorf("kaiser beta must be >= 0: %f", beta)
	}

	return nil
}
