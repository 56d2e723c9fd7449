package regulator

import (
	"context"
	"errors"
	"sync"

	"github.com/VolumeFi/curve-stablecoin/core/events"
	"github.com/VolumeFi/curve-stablecoin/logging"
	"github.com/VolumeFi/curve-stablecoin/metrics"
	"github.com/VolumeFi/curve-stablecoin/types/num"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrUnauthorized        = errors.New("caller is not the admin")
	ErrTooManyPricePairs   = errors.New("too many values")
	ErrPricePairNotFound   = errors.New("could not find price pair")
	ErrPairAlreadyAdded    = errors.New("price pair already added")
	ErrInvalidKilledState  = errors.New("invalid kill switch state")
	ErrPairIndexOutOfRange = errors.New("price pair index out of range")
)

// maxPricePairs caps the registry so the gating walk stays bounded.
const maxPricePairs = 8

//go:generate go run github.com/golang/mock/mockgen -destination mocks/pool_mock.go -package mocks github.com/VolumeFi/curve-stablecoin/core/regulator Pool
type Pool interface {
	Address() common.Address
	// GetP is the instantaneous stablecoin price, as a wad.
	GetP() *num.Uint
	// PriceOracle is the moving average stablecoin price, as a wad.
	PriceOracle() *num.Uint
}

//go:generate go run github.com/golang/mock/mockgen -destination mocks/aggregator_mock.go -package mocks github.com/VolumeFi/curve-stablecoin/core/regulator Aggregator
type Aggregator interface {
	// Price is the aggregate stablecoin price across venues, as a wad.
	Price() *num.Uint
}

//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks github.com/VolumeFi/curve-stablecoin/core/regulator Broker
type Broker interface {
	Send(events.Event)
}

// Engine decides whether peg keepers may provide stablecoin into their pool
// or withdraw it back out. Providing needs the stablecoin to trade at or
// above the peg everywhere that matters, withdrawing needs it at or below.
// An admin-held kill switch overrides either side.
type Engine struct {
	log    *logging.Logger
	broker Broker
	agg    Aggregator

	mu                  sync.RWMutex
	admin               common.Address
	emergencyAdmin      common.Address
	priceDeviation      *num.Uint
	worstPriceThreshold *num.Uint
	isKilled            Killed
	pairs               []PricePair
}

func New(log *logging.Logger, cfg Config, broker Broker, agg Aggregator, admin, emergencyAdmin common.Address) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:                 log,
		broker:              broker,
		agg:                 agg,
		admin:               admin,
		emergencyAdmin:      emergencyAdmin,
		priceDeviation:      num.MustUintFromString(cfg.PriceDeviation, 10),
		worstPriceThreshold: num.MustUintFromString(cfg.WorstPriceThreshold, 10),
	}
}

// ProvideAllowed reports whether the given peg keeper may provide
// stablecoin into its pool. Providing mints against the pool, so it is only
// allowed while the stablecoin trades at or above the peg in the aggregate,
// the keeper's pool is not being spammed away from its oracle, and the pool
// is not pricing materially below the rest of the registry (a depeg of the
// paired coin, not of the stablecoin).
func (e *Engine) ProvideAllowed(pk common.Address) bool {
	allowed := e.provideAllowed(pk)
	metrics.GateChecks.WithLabelValues("provide", outcome(allowed)).Inc()
	return allowed
}

func (e *Engine) provideAllowed(pk common.Address) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.isKilled.ProvideDisabled() {
		return false
	}
	if e.agg.Price().LT(num.Wad()) {
		return false
	}

	var price *num.Uint
	largest := num.UintZero()
	for _, pair := range e.pairs {
		p := pair.Pool.PriceOracle()
		if p.GT(largest) {
			largest = p
		}
		if pair.PegKeeper == pk {
			price = p
			if !e.priceInRange(pair.Pool.GetP(), p) {
				return false
			}
		}
	}
	if price == nil {
		// unknown peg keeper
		return false
	}
	return largest.LT(num.Sum(price, e.worstPriceThreshold))
}

// WithdrawAllowed reports whether the given peg keeper may withdraw its
// stablecoin back out of the pool.
func (e *Engine) WithdrawAllowed(pk common.Address) bool {
	allowed := e.withdrawAllowed(pk)
	metrics.GateChecks.WithLabelValues("withdraw", outcome(allowed)).Inc()
	return allowed
}

func (e *Engine) withdrawAllowed(pk common.Address) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.isKilled.WithdrawDisabled() {
		return false
	}
	if e.agg.Price().GT(num.Wad()) {
		return false
	}
	for _, pair := range e.pairs {
		if pair.PegKeeper == pk {
			return e.priceInRange(pair.Pool.GetP(), pair.Pool.PriceOracle())
		}
	}
	return false
}

// priceInRange checks |p0 - p1| < priceDeviation. Callers hold the lock.
func (e *Engine) priceInRange(p0, p1 *num.Uint) bool {
	diff, _ := num.UintZero().Delta(p0, p1)
	return diff.LT(e.priceDeviation)
}

// SetPriceDeviation updates the spot-to-oracle deviation threshold. Admin
// only.
func (e *Engine) SetPriceDeviation(ctx context.Context, caller common.Address, deviation *num.Uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.admin {
		return ErrUnauthorized
	}
	e.priceDeviation = deviation.Clone()
	e.broker.Send(events.NewPriceDeviationUpdated(ctx, e.priceDeviation))
	e.log.Info("price deviation updated", zap.String("deviation", deviation.String()))
	return nil
}

// SetWorstPriceThreshold updates the cross-pool price order threshold.
// Admin only.
func (e *Engine) SetWorstPriceThreshold(ctx context.Context, caller common.Address, threshold *num.Uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.admin {
		return ErrUnauthorized
	}
	e.worstPriceThreshold = threshold.Clone()
	e.broker.Send(events.NewWorstPriceThresholdUpdated(ctx, e.worstPriceThreshold))
	e.log.Info("worst price threshold updated", zap.String("threshold", threshold.String()))
	return nil
}

// SetEmergencyAdmin hands the kill switch to a new emergency admin. Admin
// only.
func (e *Engine) SetEmergencyAdmin(ctx context.Context, caller, admin common.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.admin {
		return ErrUnauthorized
	}
	e.emergencyAdmin = admin
	e.broker.Send(events.NewEmergencyAdminUpdated(ctx, admin))
	e.log.Info("emergency admin updated", zap.String("admin", admin.Hex()))
	return nil
}

// SetAdmin hands the regulator to a new admin. Admin only.
func (e *Engine) SetAdmin(ctx context.Context, caller, admin common.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.admin {
		return ErrUnauthorized
	}
	e.admin = admin
	e.broker.Send(events.NewAdminUpdated(ctx, admin))
	e.log.Info("admin updated", zap.String("admin", admin.Hex()))
	return nil
}

// SetKilled moves the kill switch. Admin or emergency admin.
func (e *Engine) SetKilled(ctx context.Context, caller common.Address, state Killed) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.admin && caller != e.emergencyAdmin {
		return ErrUnauthorized
	}
	if !state.Valid() {
		return ErrInvalidKilledState
	}
	e.isKilled = state
	metrics.KillSwitchState.Set(float64(state))
	e.broker.Send(events.NewKillSwitchUpdated(ctx, uint8(state), caller))
	e.log.Warn("kill switch updated",
		zap.String("state", state.String()),
		zap.String("caller", caller.Hex()),
	)
	return nil
}

// AddPricePairs appends pairs to the registry, keeping insertion order.
// Admin only.
func (e *Engine) AddPricePairs(ctx context.Context, caller common.Address, pairs []PricePair) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.admin {
		return ErrUnauthorized
	}
	if len(e.pairs)+len(pairs) > maxPricePairs {
		return ErrTooManyPricePairs
	}
	seen := map[common.Address]struct{}{}
	for _, p := range e.pairs {
		seen[p.Pool.Address()] = struct{}{}
	}
	added := make([]common.Address, 0, len(pairs))
	for _, p := range pairs {
		addr := p.Pool.Address()
		if _, ok := seen[addr]; ok {
			return ErrPairAlreadyAdded
		}
		seen[addr] = struct{}{}
		added = append(added, addr)
	}
	e.pairs = append(e.pairs, pairs...)
	e.broker.Send(events.NewPricePairsUpdated(ctx, added, nil))
	return nil
}

// RemovePricePairs drops the pairs with the given pool addresses from the
// registry. Removal swaps the last pair into the vacated slot, so only set
// membership is preserved, not order.
func (e *Engine) RemovePricePairs(ctx context.Context, caller common.Address, pools []common.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.admin {
		return ErrUnauthorized
	}
	// work on a copy so a not-found error leaves the registry untouched
	pairs := make([]PricePair, len(e.pairs))
	copy(pairs, e.pairs)
	for _, addr := range pools {
		found := false
		for i, p := range pairs {
			if p.Pool.Address() == addr {
				last := len(pairs) - 1
				pairs[i] = pairs[last]
				pairs = pairs[:last]
				found = true
				break
			}
		}
		if !found {
			return ErrPricePairNotFound
		}
	}
	e.pairs = pairs
	e.broker.Send(events.NewPricePairsUpdated(ctx, nil, pools))
	return nil
}

// PricePairs returns a copy of the registry, in storage order.
func (e *Engine) PricePairs() []PricePair {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]PricePair, len(e.pairs))
	copy(out, e.pairs)
	return out
}

// PricePair returns the pair at index i.
func (e *Engine) PricePair(i int) (PricePair, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if i < 0 || i >= len(e.pairs) {
		return PricePair{}, ErrPairIndexOutOfRange
	}
	return e.pairs[i], nil
}

func (e *Engine) Admin() common.Address {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.admin
}

func (e *Engine) EmergencyAdmin() common.Address {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.emergencyAdmin
}

func (e *Engine) IsKilled() Killed {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.isKilled
}

func (e *Engine) PriceDeviation() *num.Uint {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.priceDeviation.Clone()
}

func (e *Engine) WorstPriceThreshold() *num.Uint {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.worstPriceThreshold.Clone()
}

func outcome(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "blocked"
}
