package pegkeeper

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/VolumeFi/curve-stablecoin/core/events"
	"github.com/VolumeFi/curve-stablecoin/logging"
	"github.com/VolumeFi/curve-stablecoin/metrics"
	"github.com/VolumeFi/curve-stablecoin/types/num"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrProvideNotAllowed  = errors.New("provide not allowed by regulator")
	ErrWithdrawNotAllowed = errors.New("withdraw not allowed by regulator")
	ErrPoolBalanced       = errors.New("pool is balanced, nothing to do")
	ErrNoDebtToWithdraw   = errors.New("no outstanding debt to withdraw")
	ErrUpdateTooSoon      = errors.New("update called before action delay expired")
)

// providerFraction: each update moves 1/5 of the observed imbalance.
const providerFraction = 5

//go:generate go run github.com/golang/mock/mockgen -destination mocks/pool_mock.go -package mocks github.com/VolumeFi/curve-stablecoin/core/pegkeeper Pool
type Pool interface {
	Address() common.Address
	Balances() [2]*num.Uint
	AddLiquidity(ctx context.Context, amounts [2]*num.Uint)
	RemoveLiquidity(ctx context.Context, amounts [2]*num.Uint) error
}

//go:generate go run github.com/golang/mock/mockgen -destination mocks/regulator_mock.go -package mocks github.com/VolumeFi/curve-stablecoin/core/pegkeeper Regulator
type Regulator interface {
	ProvideAllowed(pk common.Address) bool
	WithdrawAllowed(pk common.Address) bool
}

type TimeService interface {
	GetTimeNow() time.Time
}

//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks github.com/VolumeFi/curve-stablecoin/core/pegkeeper Broker
type Broker interface {
	Send(events.Event)
}

// Keeper stabilizes one pool by minting stablecoin into it while the
// stablecoin trades above the peg and pulling it back out below, one fifth
// of the imbalance at a time, whenever the regulator lets it.
type Keeper struct {
	log    *logging.Logger
	broker Broker
	ts     TimeService

	addr      common.Address
	pool      Pool
	regulator Regulator

	mu          sync.Mutex
	debt        *num.Uint
	actionDelay time.Duration
	lastAction  time.Time
}

func New(log *logging.Logger, cfg Config, broker Broker, ts TimeService, addr common.Address, pool Pool, reg Regulator) *Keeper {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Keeper{
		log:         log,
		broker:      broker,
		ts:          ts,
		addr:        addr,
		pool:        pool,
		regulator:   reg,
		debt:        num.UintZero(),
		actionDelay: cfg.ActionDelay.Get(),
	}
}

// Address returns the keeper identity the regulator knows it by.
func (k *Keeper) Address() common.Address {
	return k.addr
}

// Debt returns the stablecoin amount currently provided into the pool.
func (k *Keeper) Debt() *num.Uint {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.debt.Clone()
}

// Update rebalances the pool one step. It provides stablecoin when the
// pool is short of it, withdraws when the pool holds too much, and fails
// when the regulator gates the move or the keeper acted too recently.
func (k *Keeper) Update(ctx context.Context) (*num.Uint, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.ts.GetTimeNow()
	if !k.lastAction.IsZero() && now.Before(k.lastAction.Add(k.actionDelay)) {
		return nil, ErrUpdateTooSoon
	}

	bal := k.pool.Balances()
	switch {
	case bal[1].GT(bal[0]):
		// stablecoin scarce, it trades above peg in this pool
		amount := num.UintZero().Sub(bal[1], bal[0])
		amount.Div(amount, num.NewUint(providerFraction))
		if amount.IsZero() {
			return nil, ErrPoolBalanced
		}
		if !k.regulator.ProvideAllowed(k.addr) {
			return nil, ErrProvideNotAllowed
		}
		k.pool.AddLiquidity(ctx, [2]*num.Uint{amount.Clone(), num.UintZero()})
		k.debt.Add(k.debt, amount)
		k.lastAction = now
		k.emit(ctx, true, amount)
		return amount, nil

	case bal[0].GT(bal[1]):
		amount := num.UintZero().Sub(bal[0], bal[1])
		amount.Div(amount, num.NewUint(providerFraction))
		amount = num.Min(amount, k.debt).Clone()
		if amount.IsZero() {
			if k.debt.IsZero() {
				return nil, ErrNoDebtToWithdraw
			}
			return nil, ErrPoolBalanced
		}
		if !k.regulator.WithdrawAllowed(k.addr) {
			return nil, ErrWithdrawNotAllowed
		}
		if err := k.pool.RemoveLiquidity(ctx, [2]*num.Uint{amount.Clone(), num.UintZero()}); err != nil {
			return nil, err
		}
		k.debt.Sub(k.debt, amount)
		k.lastAction = now
		k.emit(ctx, false, amount)
		return amount, nil

	default:
		return nil, ErrPoolBalanced
	}
}

func (k *Keeper) emit(ctx context.Context, provided bool, amount *num.Uint) {
	action := "withdraw"
	if provided {
		action = "provide"
	}
	metrics.PegKeeperActions.WithLabelValues(k.addr.Hex(), action).Inc()
	debtF, _ := k.debt.ToDecimal().Float64()
	metrics.PegKeeperDebt.WithLabelValues(k.addr.Hex()).Set(debtF)
	k.broker.Send(events.NewPegKeeperUpdated(ctx, k.addr, provided, amount, k.debt))
	k.log.Info("peg keeper update",
		zap.String("keeper", k.addr.Hex()),
		zap.String("action", action),
		zap.String("amount", amount.String()),
		zap.String("debt", k.debt.String()),
	)
}
