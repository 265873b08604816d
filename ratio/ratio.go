package ratio

import (
	"strconv"

	"github.com/bugVanisher/hud/common/errs"
)

// Reduce 将宽高比约分到最简形式
// The degenerate (0, 0) input has no defined ratio and reduces to (0, 0).
func Reduce(width, height int) (int, int) {
	g := gcd(width, height)
	if g == 0 {
		return 0, 0
	}
	return width / g, height / g
}

// ReduceStrict is Reduce with the degenerate cases surfaced as errors:
// (0, 0) has no ratio and negative terms are not a resolution.
func ReduceStrict(width, height int) (int, int, error) {
	if width == 0 && height == 0 {
		return 0, 0, errs.ErrZeroRatio
	}
	if width < 0 || height < 0 {
		return 0, 0, errs.ErrNegativeRatio
	}
	w, h := Reduce(width, height)
	return w, h, nil
}

// Ratio formats the reduced pair as "W:H", e.g. Ratio(1920, 1080) == "16:9".
func Ratio(width, height int) string {
	w, h := Reduce(width, height)
	return strconv.Itoa(w) + ":" + strconv.Itoa(h)
}

// Euclid by modulo. When one operand hits 0 the other holds the GCD;
// OR-ing with 0 extracts it without branching on which side survived.
// Works on magnitudes: Go's % keeps the dividend's sign, so a negative
// operand would never shrink and the loop would not terminate.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for a != 0 && b != 0 {
		if a > b {
			a %= b
		} else {
			b %= a
		}
	}
	return a | b
}
