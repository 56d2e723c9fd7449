package aggregator_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/VolumeFi/curve-stablecoin/core/aggregator"
	"github.com/VolumeFi/curve-stablecoin/core/aggregator/mocks"
	"github.com/VolumeFi/curve-stablecoin/core/blocktime"
	"github.com/VolumeFi/curve-stablecoin/logging"
	"github.com/VolumeFi/curve-stablecoin/types/num"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin = common.BytesToAddress([]byte("admin"))
	alice = common.BytesToAddress([]byte("alice"))
)

type testAgg struct {
	*aggregator.Engine
	ctrl *gomock.Controller
	ts   *blocktime.Svc
}

func getTestAgg(t *testing.T) *testAgg {
	t.Helper()
	ctrl := gomock.NewController(t)
	ts := blocktime.New(time.Unix(1600000000, 0))
	return &testAgg{
		Engine: aggregator.New(logging.NewTestLogger(), aggregator.NewDefaultConfig(), ts, admin),
		ctrl:   ctrl,
		ts:     ts,
	}
}

// fakePair backs a mock pair with a mutable price and fixed liquidity.
type fakePair struct {
	price *num.Uint
	tvl   *num.Uint
}

func (ta *testAgg) newPair(addr common.Address, fp *fakePair) *mocks.MockPricePair {
	pair := mocks.NewMockPricePair(ta.ctrl)
	pair.EXPECT().Address().AnyTimes().Return(addr)
	pair.EXPECT().Price().AnyTimes().DoAndReturn(func() *num.Uint {
		return fp.price.Clone()
	})
	pair.EXPECT().StablecoinBalance().AnyTimes().DoAndReturn(func() *num.Uint {
		return fp.tvl.Clone()
	})
	return pair
}

func (ta *testAgg) addPair(t *testing.T, addr common.Address, price string) *fakePair {
	t.Helper()
	fp := &fakePair{price: num.MustWadFromString(price), tvl: num.NewWad(1000000)}
	require.NoError(t, ta.AddPricePair(context.Background(), admin, ta.newPair(addr, fp)))
	return fp
}

func pairAddr(i int) common.Address {
	return common.BytesToAddress([]byte(fmt.Sprintf("pair-%02d", i)))
}

func TestAggregator(t *testing.T) {
	t.Run("Only the admin may manage pairs", testAggAdminControl)
	t.Run("Tracked pairs are capped and deduplicated", testAggPairManagement)
	t.Run("With no pairs the last value holds", testAggNoPairs)
	t.Run("The aggregate trails the pair prices and converges", testAggConvergence)
	t.Run("A single depegged pool cannot drag the aggregate", testAggOutlierDamping)
	t.Run("Liquidity weights the aggregate between clusters", testAggLiquidityWeight)
}

func testAggAdminControl(t *testing.T) {
	ta := getTestAgg(t)
	defer ta.ctrl.Finish()
	ctx := context.Background()

	fp := &fakePair{price: num.Wad(), tvl: num.NewWad(1)}
	err := ta.AddPricePair(ctx, alice, ta.newPair(pairAddr(0), fp))
	assert.ErrorIs(t, err, aggregator.ErrUnauthorized)
	err = ta.RemovePricePair(ctx, alice, 0)
	assert.ErrorIs(t, err, aggregator.ErrUnauthorized)
	assert.Empty(t, ta.PricePairs())
}

func testAggPairManagement(t *testing.T) {
	ta := getTestAgg(t)
	defer ta.ctrl.Finish()
	ctx := context.Background()

	for i := 0; i < 32; i++ {
		ta.addPair(t, pairAddr(i), "1")
	}
	fp := &fakePair{price: num.Wad(), tvl: num.NewWad(1)}
	err := ta.AddPricePair(ctx, admin, ta.newPair(pairAddr(32), fp))
	assert.ErrorIs(t, err, aggregator.ErrTooManyPricePairs)

	err = ta.AddPricePair(ctx, admin, ta.newPair(pairAddr(5), fp))
	assert.ErrorIs(t, err, aggregator.ErrPairAlreadyAdded)

	err = ta.RemovePricePair(ctx, admin, 32)
	assert.ErrorIs(t, err, aggregator.ErrPairIndexOutOfRange)
	require.NoError(t, ta.RemovePricePair(ctx, admin, 0))
	assert.Len(t, ta.PricePairs(), 31)
}

func testAggNoPairs(t *testing.T) {
	ta := getTestAgg(t)
	defer ta.ctrl.Finish()

	assert.Equal(t, num.Wad(), ta.Price())
	ta.ts.Forward(context.Background(), time.Hour)
	assert.Equal(t, num.Wad(), ta.Price())
}

func testAggConvergence(t *testing.T) {
	ta := getTestAgg(t)
	defer ta.ctrl.Finish()
	ctx := context.Background()

	ta.addPair(t, pairAddr(0), "0.95")

	// the average starts at the peg and leans towards the pair over time
	p0 := ta.Price()
	assert.Equal(t, num.Wad(), p0)

	ta.ts.Forward(ctx, 600*time.Second)
	p1 := ta.Price()
	assert.True(t, p1.LT(p0))
	assert.True(t, p1.GT(num.MustWadFromString("0.95")))

	ta.ts.Forward(ctx, 6000*time.Second)
	diff, _ := num.UintZero().Delta(ta.Price(), num.MustWadFromString("0.95"))
	assert.True(t, diff.LT(num.MustWadFromString("0.0001")))
}

func testAggOutlierDamping(t *testing.T) {
	ta := getTestAgg(t)
	defer ta.ctrl.Finish()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ta.addPair(t, pairAddr(i), "1")
	}
	ta.addPair(t, pairAddr(3), "0.8")

	ta.ts.Forward(ctx, 6000*time.Second)
	diff, _ := num.UintZero().Delta(ta.Price(), num.Wad())
	assert.True(t, diff.LT(num.MustWadFromString("0.001")),
		"aggregate %s dragged by the outlier", ta.Price())
}

func testAggLiquidityWeight(t *testing.T) {
	ta := getTestAgg(t)
	defer ta.ctrl.Finish()
	ctx := context.Background()

	// two pairs a hair apart, one holding ten times the liquidity: the
	// aggregate lands close to the deep pair
	deep := ta.addPair(t, pairAddr(0), "1.0000")
	deep.tvl = num.NewWad(10000000)
	ta.addPair(t, pairAddr(1), "0.9995")

	ta.ts.Forward(ctx, 6000*time.Second)
	p := ta.Price()
	assert.True(t, p.GT(num.MustWadFromString("0.9997")))
	assert.True(t, p.LT(num.MustWadFromString("1.0001")))
}
