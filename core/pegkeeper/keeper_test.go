package pegkeeper_test

import (
	"context"
	"testing"
	"time"

	"github.com/VolumeFi/curve-stablecoin/core/blocktime"
	"github.com/VolumeFi/curve-stablecoin/core/pegkeeper"
	"github.com/VolumeFi/curve-stablecoin/core/pegkeeper/mocks"
	"github.com/VolumeFi/curve-stablecoin/logging"
	"github.com/VolumeFi/curve-stablecoin/types/num"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keeperAddr = common.BytesToAddress([]byte("keeper"))

type testKeeper struct {
	*pegkeeper.Keeper
	ctrl     *gomock.Controller
	ts       *blocktime.Svc
	reg      *mocks.MockRegulator
	balances [2]*num.Uint
}

// getTestKeeper backs the keeper with a mock pool whose liquidity calls
// mutate the harness balances, so rebalancing steps compound.
func getTestKeeper(t *testing.T) *testKeeper {
	t.Helper()
	ctrl := gomock.NewController(t)
	tk := &testKeeper{
		ctrl:     ctrl,
		ts:       blocktime.New(time.Unix(1600000000, 0)),
		reg:      mocks.NewMockRegulator(ctrl),
		balances: [2]*num.Uint{num.NewWad(1000000), num.NewWad(1000000)},
	}

	broker := mocks.NewMockBroker(ctrl)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()

	pool := mocks.NewMockPool(ctrl)
	pool.EXPECT().Address().AnyTimes().Return(common.BytesToAddress([]byte("pool")))
	pool.EXPECT().Balances().AnyTimes().DoAndReturn(func() [2]*num.Uint {
		return [2]*num.Uint{tk.balances[0].Clone(), tk.balances[1].Clone()}
	})
	pool.EXPECT().AddLiquidity(gomock.Any(), gomock.Any()).AnyTimes().Do(
		func(_ context.Context, amounts [2]*num.Uint) {
			tk.balances[0].Add(tk.balances[0], amounts[0])
			tk.balances[1].Add(tk.balances[1], amounts[1])
		})
	pool.EXPECT().RemoveLiquidity(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, amounts [2]*num.Uint) error {
			tk.balances[0].Sub(tk.balances[0], amounts[0])
			tk.balances[1].Sub(tk.balances[1], amounts[1])
			return nil
		})

	tk.Keeper = pegkeeper.New(
		logging.NewTestLogger(),
		pegkeeper.NewDefaultConfig(),
		broker,
		tk.ts,
		keeperAddr,
		pool,
		tk.reg,
	)
	return tk
}

func (tk *testKeeper) setBalances(stable, paired uint64) {
	tk.balances[0] = num.NewWad(stable)
	tk.balances[1] = num.NewWad(paired)
}

func TestPegKeeper(t *testing.T) {
	t.Run("Provides a fifth of the shortfall when stablecoin is scarce", testKeeperProvide)
	t.Run("Withdraws a fifth of the excess, bounded by the debt", testKeeperWithdraw)
	t.Run("A balanced pool needs no action", testKeeperBalanced)
	t.Run("Nothing to withdraw without outstanding debt", testKeeperNoDebt)
	t.Run("The regulator gates both directions", testKeeperGated)
	t.Run("Back to back updates wait out the action delay", testKeeperActionDelay)
}

func testKeeperProvide(t *testing.T) {
	tk := getTestKeeper(t)
	defer tk.ctrl.Finish()
	ctx := context.Background()

	tk.setBalances(900000, 1000000)
	tk.reg.EXPECT().ProvideAllowed(keeperAddr).Times(1).Return(true)

	amount, err := tk.Update(ctx)
	require.NoError(t, err)
	assert.Equal(t, num.NewWad(20000), amount)
	assert.Equal(t, num.NewWad(20000), tk.Debt())
	assert.Equal(t, num.NewWad(920000), tk.balances[0])
}

func testKeeperWithdraw(t *testing.T) {
	tk := getTestKeeper(t)
	defer tk.ctrl.Finish()
	ctx := context.Background()

	// build up some debt first
	tk.setBalances(900000, 1000000)
	tk.reg.EXPECT().ProvideAllowed(keeperAddr).Times(1).Return(true)
	_, err := tk.Update(ctx)
	require.NoError(t, err)
	require.Equal(t, num.NewWad(20000), tk.Debt())

	// the pool swings the other way, far enough that a full fifth of the
	// excess would exceed the debt
	tk.ts.Forward(ctx, time.Hour)
	tk.setBalances(1200000, 1000000)
	tk.reg.EXPECT().WithdrawAllowed(keeperAddr).Times(1).Return(true)

	amount, err := tk.Update(ctx)
	require.NoError(t, err)
	assert.Equal(t, num.NewWad(20000), amount)
	assert.True(t, tk.Debt().IsZero())
	assert.Equal(t, num.NewWad(1180000), tk.balances[0])
}

func testKeeperBalanced(t *testing.T) {
	tk := getTestKeeper(t)
	defer tk.ctrl.Finish()

	_, err := tk.Update(context.Background())
	assert.ErrorIs(t, err, pegkeeper.ErrPoolBalanced)
	assert.True(t, tk.Debt().IsZero())
}

func testKeeperNoDebt(t *testing.T) {
	tk := getTestKeeper(t)
	defer tk.ctrl.Finish()

	tk.setBalances(1200000, 1000000)
	_, err := tk.Update(context.Background())
	assert.ErrorIs(t, err, pegkeeper.ErrNoDebtToWithdraw)
}

func testKeeperGated(t *testing.T) {
	tk := getTestKeeper(t)
	defer tk.ctrl.Finish()
	ctx := context.Background()

	tk.setBalances(900000, 1000000)
	tk.reg.EXPECT().ProvideAllowed(keeperAddr).Times(1).Return(false)
	_, err := tk.Update(ctx)
	assert.ErrorIs(t, err, pegkeeper.ErrProvideNotAllowed)
	assert.True(t, tk.Debt().IsZero())
	assert.Equal(t, num.NewWad(900000), tk.balances[0])

	// seed debt so the withdraw side is reachable
	tk.reg.EXPECT().ProvideAllowed(keeperAddr).Times(1).Return(true)
	_, err = tk.Update(ctx)
	require.NoError(t, err)

	tk.ts.Forward(ctx, time.Hour)
	tk.setBalances(1200000, 1000000)
	tk.reg.EXPECT().WithdrawAllowed(keeperAddr).Times(1).Return(false)
	_, err = tk.Update(ctx)
	assert.ErrorIs(t, err, pegkeeper.ErrWithdrawNotAllowed)
	assert.Equal(t, num.NewWad(20000), tk.Debt())
}

func testKeeperActionDelay(t *testing.T) {
	tk := getTestKeeper(t)
	defer tk.ctrl.Finish()
	ctx := context.Background()

	tk.setBalances(900000, 1000000)
	tk.reg.EXPECT().ProvideAllowed(keeperAddr).AnyTimes().Return(true)

	_, err := tk.Update(ctx)
	require.NoError(t, err)

	// still short, but the delay has not run out
	_, err = tk.Update(ctx)
	assert.ErrorIs(t, err, pegkeeper.ErrUpdateTooSoon)

	tk.ts.Forward(ctx, 14*time.Minute)
	_, err = tk.Update(ctx)
	assert.ErrorIs(t, err, pegkeeper.ErrUpdateTooSoon)

	tk.ts.Forward(ctx, time.Minute)
	amount, err := tk.Update(ctx)
	require.NoError(t, err)
	// a fifth of what is left of the shortfall
	assert.Equal(t, num.NewWad(16000), amount)
	assert.Equal(t, num.NewWad(36000), tk.Debt())
}
