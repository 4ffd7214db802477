package eternae

import (
	"math"

	"github.com/beorn7/floats"
)

// near compares floats relatively via floats.AlmostEqual, except when either
// side is exactly zero, where relative comparison degenerates and an absolute
// tolerance is the meaningful check.
func near(a, b, eps float64) bool {
	if a == 0 || b == 0 {
		return math.Abs(a-b) <= eps
	}
	return floats.AlmostEqual(a, b, eps)
}
