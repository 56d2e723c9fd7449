package stableswap_test

import (
	"context"
	"testing"
	"time"

	"github.com/VolumeFi/curve-stablecoin/core/blocktime"
	"github.com/VolumeFi/curve-stablecoin/core/stableswap"
	"github.com/VolumeFi/curve-stablecoin/logging"
	"github.com/VolumeFi/curve-stablecoin/types/num"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPool struct {
	*stableswap.Pool
	ts *blocktime.Svc
}

func getTestPool(t *testing.T) *testPool {
	t.Helper()
	ts := blocktime.New(time.Unix(1600000000, 0))
	pool := stableswap.New(
		logging.NewTestLogger(),
		stableswap.NewDefaultConfig(),
		ts,
		common.BytesToAddress([]byte("pool")),
	)
	seed := num.NewWad(1000000)
	pool.AddLiquidity(context.Background(), [2]*num.Uint{seed.Clone(), seed.Clone()})
	return &testPool{Pool: pool, ts: ts}
}

func TestPool(t *testing.T) {
	t.Run("A balanced pool prices exactly at the peg", testBalancedPrice)
	t.Run("Exchange moves balances and price in the right direction", testExchange)
	t.Run("A round trip only loses the fee", testExchangeRoundTrip)
	t.Run("Exchange arguments are validated", testExchangeErrors)
	t.Run("Imbalanced liquidity moves the price", testLiquidityMovesPrice)
	t.Run("Liquidity withdrawals are bounded by the balances", testRemoveLiquidity)
	t.Run("Rate multipliers shift the price without touching the oracle", testRateMultiplier)
	t.Run("The oracle trails the spot price and converges on it", testOracleSettlement)
}

func testBalancedPrice(t *testing.T) {
	tp := getTestPool(t)
	assert.Equal(t, num.Wad(), tp.GetP())
	assert.Equal(t, num.Wad(), tp.PriceOracle())
	assert.Equal(t, num.NewWad(1000000), tp.StablecoinBalance())
}

func testExchange(t *testing.T) {
	tp := getTestPool(t)
	ctx := context.Background()

	dx := num.NewWad(1000)
	dy, err := tp.Exchange(ctx, 0, 1, dx)
	require.NoError(t, err)

	// near the peg the payout is the input minus fee and slippage
	assert.True(t, dy.LT(dx))
	assert.True(t, dy.GT(num.NewWad(999)))

	bal := tp.Balances()
	assert.Equal(t, num.Sum(num.NewWad(1000000), dx), bal[0])
	assert.Equal(t, num.UintZero().Sub(num.NewWad(1000000), dy), bal[1])

	// selling the stablecoin into the pool cheapens it
	p1 := tp.GetP()
	assert.True(t, p1.LT(num.Wad()))

	_, err = tp.Exchange(ctx, 0, 1, dx)
	require.NoError(t, err)
	assert.True(t, tp.GetP().LT(p1))

	// buying it back lifts the price again
	_, err = tp.Exchange(ctx, 1, 0, num.NewWad(3000))
	require.NoError(t, err)
	assert.True(t, tp.GetP().GT(p1))
}

func testExchangeRoundTrip(t *testing.T) {
	tp := getTestPool(t)
	ctx := context.Background()

	dx := num.NewWad(1000)
	dy, err := tp.Exchange(ctx, 0, 1, dx)
	require.NoError(t, err)
	back, err := tp.Exchange(ctx, 1, 0, dy)
	require.NoError(t, err)

	assert.True(t, back.LT(dx))
	assert.True(t, back.GT(num.NewWad(999)))
}

func testExchangeErrors(t *testing.T) {
	tp := getTestPool(t)
	ctx := context.Background()

	_, err := tp.Exchange(ctx, 0, 0, num.NewWad(1))
	assert.ErrorIs(t, err, stableswap.ErrSameCoin)
	_, err = tp.Exchange(ctx, 0, 2, num.NewWad(1))
	assert.ErrorIs(t, err, stableswap.ErrCoinIndexOutOfRange)
	_, err = tp.Exchange(ctx, -1, 1, num.NewWad(1))
	assert.ErrorIs(t, err, stableswap.ErrCoinIndexOutOfRange)
	_, err = tp.Exchange(ctx, 0, 1, num.UintZero())
	assert.ErrorIs(t, err, stableswap.ErrZeroAmount)
}

func testLiquidityMovesPrice(t *testing.T) {
	tp := getTestPool(t)
	ctx := context.Background()

	tp.AddLiquidity(ctx, [2]*num.Uint{num.NewWad(500000), num.UintZero()})
	assert.True(t, tp.GetP().LT(num.Wad()))

	tp.AddLiquidity(ctx, [2]*num.Uint{num.UintZero(), num.NewWad(500000)})
	assert.Equal(t, num.Wad(), tp.GetP())
}

func testRemoveLiquidity(t *testing.T) {
	tp := getTestPool(t)
	ctx := context.Background()

	err := tp.RemoveLiquidity(ctx, [2]*num.Uint{num.NewWad(2000000), num.UintZero()})
	assert.ErrorIs(t, err, stableswap.ErrInsufficientBalance)

	require.NoError(t, tp.RemoveLiquidity(ctx, [2]*num.Uint{num.NewWad(500000), num.UintZero()}))
	bal := tp.Balances()
	assert.Equal(t, num.NewWad(500000), bal[0])
	// draining the stablecoin side makes what is left dearer
	assert.True(t, tp.GetP().GT(num.Wad()))
}

func testRateMultiplier(t *testing.T) {
	tp := getTestPool(t)

	assert.ErrorIs(t, tp.ScaleRateMultiplier(2, num.NewWad(2)), stableswap.ErrCoinIndexOutOfRange)

	require.NoError(t, tp.ScaleRateMultiplier(0, num.NewWad(2)))
	assert.True(t, tp.GetP().LT(num.Wad()))
	// balances and oracle are untouched, only the quoting changed
	assert.Equal(t, num.NewWad(1000000), tp.Balances()[0])
	assert.Equal(t, num.Wad(), tp.PriceOracle())
}

func testOracleSettlement(t *testing.T) {
	tp := getTestPool(t)
	ctx := context.Background()

	_, err := tp.Exchange(ctx, 0, 1, num.NewWad(10000))
	require.NoError(t, err)
	spot := tp.GetP()
	require.True(t, spot.LT(num.Wad()))

	// no time has passed, the oracle still reports the old price
	assert.Equal(t, num.Wad(), tp.PriceOracle())

	// one window closes most of the gap
	cfg := stableswap.NewDefaultConfig()
	window := cfg.OracleWindow.Get()
	tp.ts.Forward(ctx, window)
	mid := tp.PriceOracle()
	assert.True(t, mid.LT(num.Wad()))
	assert.True(t, mid.GT(spot))

	// after many windows it has effectively converged on the spot price
	tp.ts.Forward(ctx, 10*window)
	diff, _ := num.UintZero().Delta(tp.PriceOracle(), spot)
	assert.True(t, diff.LT(num.MustWadFromString("0.00001")))
}
