package ewma_test

import (
	"testing"
	"time"

	"github.com/VolumeFi/curve-stablecoin/core/ewma"
	"github.com/VolumeFi/curve-stablecoin/types/num"

	"github.com/stretchr/testify/assert"
)

func TestBlend(t *testing.T) {
	prev := num.Wad()
	last := num.MustWadFromString("0.9")

	t.Run("no elapsed time keeps the previous value", func(t *testing.T) {
		assert.Equal(t, prev, ewma.Blend(prev, last, 0, time.Minute))
		assert.Equal(t, prev, ewma.Blend(prev, last, -time.Second, time.Minute))
	})

	t.Run("a zero window snaps to the last value", func(t *testing.T) {
		assert.Equal(t, last, ewma.Blend(prev, last, time.Second, 0))
	})

	t.Run("equal values stay put", func(t *testing.T) {
		assert.Equal(t, prev, ewma.Blend(prev, prev.Clone(), time.Hour, time.Minute))
	})

	t.Run("one window closes about two thirds of the gap", func(t *testing.T) {
		got := ewma.Blend(prev, last, time.Minute, time.Minute)
		// 0.9 + 0.1*e^-1 = 0.9367...
		assert.True(t, got.GT(num.MustWadFromString("0.9367")))
		assert.True(t, got.LT(num.MustWadFromString("0.9369")))
	})

	t.Run("longer gaps move further", func(t *testing.T) {
		step := ewma.Blend(prev, last, time.Minute, time.Minute)
		far := ewma.Blend(prev, last, time.Hour, time.Minute)
		assert.True(t, far.LT(step))
		// after sixty windows the gap is gone for all practical purposes
		diff, _ := num.UintZero().Delta(far, last)
		assert.True(t, diff.LT(num.MustWadFromString("0.000001")))
	})

	t.Run("the average never overshoots either side", func(t *testing.T) {
		for _, dt := range []time.Duration{time.Second, time.Minute, time.Hour} {
			got := ewma.Blend(prev, last, dt, time.Minute)
			assert.True(t, got.LTE(prev), "dt %s", dt)
			assert.True(t, got.GTE(last), "dt %s", dt)
		}
	})
}
