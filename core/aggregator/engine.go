package aggregator

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/VolumeFi/curve-stablecoin/core/ewma"
	"github.com/VolumeFi/curve-stablecoin/logging"
	"github.com/VolumeFi/curve-stablecoin/types/num"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrUnauthorized        = errors.New("caller is not the admin")
	ErrTooManyPricePairs   = errors.New("too many price pairs")
	ErrPairAlreadyAdded    = errors.New("price pair already added")
	ErrPairIndexOutOfRange = errors.New("price pair index out of range")
)

const maxPairs = 32

//go:generate go run github.com/golang/mock/mockgen -destination mocks/price_pair_mock.go -package mocks github.com/VolumeFi/curve-stablecoin/core/aggregator PricePair
type PricePair interface {
	Address() common.Address
	// Price of the stablecoin reported by the pair, as a wad.
	Price() *num.Uint
	// StablecoinBalance is the pair's stablecoin liquidity, used as the
	// base weight.
	StablecoinBalance() *num.Uint
}

type TimeService interface {
	GetTimeNow() time.Time
}

// Engine aggregates the stablecoin price across tracked pairs into a single
// liquidity-weighted, outlier-resistant moving average.
type Engine struct {
	log *logging.Logger
	ts  TimeService

	admin common.Address

	mu          sync.Mutex
	pairs       []PricePair
	sigma       float64
	window      time.Duration
	lastValue   *num.Uint
	lastUpdated time.Time
}

func New(log *logging.Logger, cfg Config, ts TimeService, admin common.Address) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:         log,
		ts:          ts,
		admin:       admin,
		sigma:       cfg.Sigma,
		window:      cfg.Window.Get(),
		lastValue:   num.Wad(),
		lastUpdated: ts.GetTimeNow(),
	}
}

// AddPricePair starts tracking a pair. Admin only.
func (e *Engine) AddPricePair(ctx context.Context, caller common.Address, pair PricePair) error {
	if caller != e.admin {
		return ErrUnauthorized
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range e.pairs {
		if p.Address() == pair.Address() {
			return ErrPairAlreadyAdded
		}
	}
	if len(e.pairs) >= maxPairs {
		return ErrTooManyPricePairs
	}
	e.settle()
	e.pairs = append(e.pairs, pair)
	e.log.Info("price pair added", zap.String("pair", pair.Address().Hex()))
	return nil
}

// RemovePricePair stops tracking the pair at index i, the last pair takes
// its slot. Admin only.
func (e *Engine) RemovePricePair(ctx context.Context, caller common.Address, i int) error {
	if caller != e.admin {
		return ErrUnauthorized
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if i < 0 || i >= len(e.pairs) {
		return ErrPairIndexOutOfRange
	}
	e.settle()
	addr := e.pairs[i].Address()
	last := len(e.pairs) - 1
	e.pairs[i] = e.pairs[last]
	e.pairs = e.pairs[:last]
	e.log.Info("price pair removed", zap.String("pair", addr.Hex()))
	return nil
}

// PricePairs returns the tracked pair addresses.
func (e *Engine) PricePairs() []common.Address {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]common.Address, 0, len(e.pairs))
	for _, p := range e.pairs {
		out = append(out, p.Address())
	}
	return out
}

// Price returns the aggregate stablecoin price as a wad, settled against
// the current chain time.
func (e *Engine) Price() *num.Uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	raw, ok := e.rawPrice()
	if !ok {
		return e.lastValue.Clone()
	}
	dt := e.ts.GetTimeNow().Sub(e.lastUpdated)
	return ewma.Blend(e.lastValue, raw, dt, e.window)
}

// OnTick folds the current raw aggregate into the stored moving average.
func (e *Engine) OnTick(ctx context.Context, _ time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()
}

// settle updates the stored average up to now. Callers hold the lock.
func (e *Engine) settle() {
	now := e.ts.GetTimeNow()
	raw, ok := e.rawPrice()
	if ok {
		dt := now.Sub(e.lastUpdated)
		e.lastValue = ewma.Blend(e.lastValue, raw, dt, e.window)
	}
	e.lastUpdated = now
}

// rawPrice computes the liquidity-weighted aggregate of the tracked pair
// prices, with three rounds of Gaussian reweighting around the centre to
// damp outliers. Callers hold the lock.
func (e *Engine) rawPrice() (*num.Uint, bool) {
	if len(e.pairs) == 0 {
		return nil, false
	}

	prices := make([]num.Decimal, 0, len(e.pairs))
	tvls := make([]num.Decimal, 0, len(e.pairs))
	for _, p := range e.pairs {
		prices = append(prices, num.WadToDecimal(p.Price()))
		tvls = append(tvls, p.StablecoinBalance().ToDecimal())
	}

	// anchor the first pass on the median so a single depegged pool never
	// drags the centre it is judged against
	center := median(prices)
	var mean num.Decimal
	for iter := 0; iter < 3; iter++ {
		weights := make([]num.Decimal, len(prices))
		for i := range prices {
			dev, _ := prices[i].Sub(center).Float64()
			g := math.Exp(-(dev / e.sigma) * (dev / e.sigma))
			weights[i] = tvls[i].Mul(num.DecimalFromFloat(g))
		}
		mean = weightedMean(prices, weights)
		center = mean
	}

	w, overflow := num.WadFromDecimal(mean)
	if overflow {
		return nil, false
	}
	return w, true
}

func median(values []num.Decimal) num.Decimal {
	sorted := make([]num.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(num.DecimalFromInt64(2))
}

func weightedMean(values, weights []num.Decimal) num.Decimal {
	sum, wsum := num.DecimalZero(), num.DecimalZero()
	for i := range values {
		sum = sum.Add(values[i].Mul(weights[i]))
		wsum = wsum.Add(weights[i])
	}
	if wsum.IsZero() {
		// all the weight got crushed, fall back to a flat average
		for _, v := range values {
			sum = sum.Add(v)
		}
		return sum.Div(num.DecimalFromInt64(int64(len(values))))
	}
	return sum.Div(wsum)
}
