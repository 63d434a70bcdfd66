package screen

import (
	"fmt"
	"math"
)

// Bin maps a normalized feature value onto one of cntBins equal-width
// buckets. A value of exactly 1.0 lands in the last bucket.
func Bin(v float64, cntBins int) (int, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %v", ErrDomain, v)
	}

	b := int(math.Floor(v * float64(cntBins)))
	if b == cntBins {
		b--
	}
	return b, nil
}
