package blocktime_test

import (
	"context"
	"testing"
	"time"

	"github.com/VolumeFi/curve-stablecoin/core/blocktime"

	"github.com/stretchr/testify/assert"
)

func TestService(t *testing.T) {
	t0 := time.Unix(1600000000, 0)
	ctx := context.Background()

	t.Run("starts at the provided time", func(t *testing.T) {
		s := blocktime.New(t0)
		assert.Equal(t, t0, s.GetTimeNow())
	})

	t.Run("forward advances the clock", func(t *testing.T) {
		s := blocktime.New(t0)
		s.Forward(ctx, time.Hour)
		assert.Equal(t, t0.Add(time.Hour), s.GetTimeNow())
		s.Forward(ctx, time.Minute)
		assert.Equal(t, t0.Add(time.Hour+time.Minute), s.GetTimeNow())
	})

	t.Run("the clock never runs backwards", func(t *testing.T) {
		s := blocktime.New(t0)
		s.SetTimeNow(ctx, t0.Add(-time.Hour))
		assert.Equal(t, t0, s.GetTimeNow())
	})

	t.Run("listeners see every tick in order", func(t *testing.T) {
		s := blocktime.New(t0)
		var ticks []time.Time
		s.NotifyOnTick(func(_ context.Context, tt time.Time) {
			ticks = append(ticks, tt)
		})
		s.Forward(ctx, time.Minute)
		s.Forward(ctx, time.Minute)
		assert.Equal(t, []time.Time{t0.Add(time.Minute), t0.Add(2 * time.Minute)}, ticks)
	})
}
