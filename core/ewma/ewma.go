package ewma

import (
	"math"
	"time"

	"github.com/VolumeFi/curve-stablecoin/types/num"
)

// Blend moves an exponential moving average from prev towards last, given
// the time elapsed since the average was last touched and the averaging
// window. The decay factor is exp(-dt/window), so after one window the
// average has closed ~63% of the gap, and after a handful of windows it has
// effectively converged on last.
func Blend(prev, last *num.Uint, dt, window time.Duration) *num.Uint {
	if dt <= 0 {
		return prev.Clone()
	}
	if window <= 0 {
		return last.Clone()
	}
	alpha := math.Exp(-dt.Seconds() / window.Seconds())
	// prev*alpha + last*(1-alpha), in wads
	aw, _ := num.WadFromDecimal(num.DecimalFromFloat(alpha))
	keep := num.WadMul(prev, aw)
	move := num.WadMul(last, num.UintZero().Sub(num.Wad(), aw))
	return num.Sum(keep, move)
}
