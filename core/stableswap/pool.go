package stableswap

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/VolumeFi/curve-stablecoin/core/ewma"
	"github.com/VolumeFi/curve-stablecoin/logging"
	"github.com/VolumeFi/curve-stablecoin/types/num"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrSameCoin            = errors.New("input and output coin are the same")
	ErrCoinIndexOutOfRange = errors.New("coin index out of range")
	ErrZeroAmount          = errors.New("zero amount")
	ErrInsufficientBalance = errors.New("insufficient pool balance")
)

const (
	nCoins = 2
	// amplification is stored pre-multiplied by this, matching the
	// convention of the on-chain pools.
	aPrecision = 100
	// fees are expressed in parts per 1e10.
	feeDenominator = 10000000000
)

type TimeService interface {
	GetTimeNow() time.Time
}

// Pool is a two-coin stable-swap pool. Coin 0 is the stablecoin, coin 1 the
// coin it is pegged against. All reported prices are for coin 0, denominated
// in coin 1, as wads.
type Pool struct {
	log *logging.Logger
	ts  TimeService

	addr common.Address

	mu              sync.Mutex
	amp             *num.Uint // A * aPrecision
	fee             *num.Uint
	balances        [nCoins]*num.Uint
	rateMultipliers [nCoins]*num.Uint

	oracleWindow time.Duration
	lastPrice    *num.Uint
	oraclePrice  *num.Uint
	lastUpdated  time.Time
}

func New(log *logging.Logger, cfg Config, ts TimeService, addr common.Address) *Pool {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	now := ts.GetTimeNow()
	return &Pool{
		log:  log,
		ts:   ts,
		addr: addr,
		amp:  num.UintZero().Mul(num.NewUint(cfg.Amplification), num.NewUint(aPrecision)),
		fee:  num.NewUint(cfg.Fee),
		balances: [nCoins]*num.Uint{
			num.UintZero(),
			num.UintZero(),
		},
		rateMultipliers: [nCoins]*num.Uint{
			num.Wad(),
			num.Wad(),
		},
		oracleWindow: cfg.OracleWindow.Get(),
		lastPrice:    num.Wad(),
		oraclePrice:  num.Wad(),
		lastUpdated:  now,
	}
}

// Address returns the pool identity.
func (p *Pool) Address() common.Address {
	return p.addr
}

// Balances returns a copy of the pool balances.
func (p *Pool) Balances() [nCoins]*num.Uint {
	p.mu.Lock()
	defer p.mu.Unlock()
	return [nCoins]*num.Uint{
		p.balances[0].Clone(),
		p.balances[1].Clone(),
	}
}

// StablecoinBalance returns the stablecoin side of the pool, used as the
// aggregator's liquidity weight.
func (p *Pool) StablecoinBalance() *num.Uint {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balances[0].Clone()
}

// ScaleRateMultiplier scales the internal rate multiplier of one coin,
// shifting the instantaneous price without touching balances or the oracle.
// This mirrors a rebasing or depegging of the underlying coin.
func (p *Pool) ScaleRateMultiplier(i int, factor *num.Uint) error {
	if i < 0 || i >= nCoins {
		return ErrCoinIndexOutOfRange
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rateMultipliers[i] = num.WadMul(p.rateMultipliers[i], factor)
	return nil
}

// AddLiquidity deposits amounts of both coins, imbalanced deposits allowed.
// The simulator does not track LP shares, deposits are unconditional.
func (p *Pool) AddLiquidity(ctx context.Context, amounts [nCoins]*num.Uint) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.settleOracle()
	for i := range amounts {
		p.balances[i].Add(p.balances[i], amounts[i])
	}
	p.lastPrice = p.spotPrice()
}

// RemoveLiquidity withdraws amounts of both coins, imbalanced withdrawals
// allowed.
func (p *Pool) RemoveLiquidity(ctx context.Context, amounts [nCoins]*num.Uint) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range amounts {
		if amounts[i].GT(p.balances[i]) {
			return ErrInsufficientBalance
		}
	}
	p.settleOracle()
	for i := range amounts {
		p.balances[i].Sub(p.balances[i], amounts[i])
	}
	p.lastPrice = p.spotPrice()
	return nil
}

// Exchange swaps dx of coin i into coin j and returns the amount paid out.
func (p *Pool) Exchange(ctx context.Context, i, j int, dx *num.Uint) (*num.Uint, error) {
	if i < 0 || i >= nCoins || j < 0 || j >= nCoins {
		return nil, ErrCoinIndexOutOfRange
	}
	if i == j {
		return nil, ErrSameCoin
	}
	if dx.IsZero() {
		return nil, ErrZeroAmount
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.settleOracle()

	xp := p.xp()
	d := getD(xp, p.amp)
	x := num.Sum(xp[i], num.WadMul(dx, p.rateMultipliers[i]))
	y := getY(x, d, p.amp)

	// -1 to absorb rounding in favour of the pool
	dyXp := num.UintZero().Sub(xp[j], y)
	if dyXp.IsZero() {
		return nil, ErrZeroAmount
	}
	dyXp.Sub(dyXp, num.NewUint(1))

	dyFee := num.UintZero().Mul(dyXp, p.fee)
	dyFee.Div(dyFee, num.NewUint(feeDenominator))
	dyXp.Sub(dyXp, dyFee)

	dy := num.WadDiv(dyXp, p.rateMultipliers[j])
	if dy.GT(p.balances[j]) {
		return nil, ErrInsufficientBalance
	}

	p.balances[i].Add(p.balances[i], dx)
	p.balances[j].Sub(p.balances[j], dy)
	p.lastPrice = p.spotPrice()

	if p.log.IsDebug() {
		p.log.Debug("exchange",
			zap.String("pool", p.addr.Hex()),
			zap.Int("i", i),
			zap.Int("j", j),
			zap.String("dx", dx.String()),
			zap.String("dy", dy.String()),
			zap.String("price", p.lastPrice.String()),
		)
	}
	return dy, nil
}

// GetP returns the instantaneous price of the stablecoin, as a wad.
func (p *Pool) GetP() *num.Uint {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spotPrice()
}

// PriceOracle returns the exponential moving average price of the
// stablecoin, settled against the current chain time.
func (p *Pool) PriceOracle() *num.Uint {
	p.mu.Lock()
	defer p.mu.Unlock()
	dt := p.ts.GetTimeNow().Sub(p.lastUpdated)
	return ewma.Blend(p.oraclePrice, p.lastPrice, dt, p.oracleWindow)
}

// Price implements the aggregator's price pair interface.
func (p *Pool) Price() *num.Uint {
	return p.PriceOracle()
}

// settleOracle folds the price recorded at the previous action into the
// moving average, up to the current chain time. Callers hold the lock.
func (p *Pool) settleOracle() {
	now := p.ts.GetTimeNow()
	dt := now.Sub(p.lastUpdated)
	if dt <= 0 {
		return
	}
	p.oraclePrice = ewma.Blend(p.oraclePrice, p.lastPrice, dt, p.oracleWindow)
	p.lastUpdated = now
}

// xp returns the rate-adjusted balances. Callers hold the lock.
func (p *Pool) xp() [nCoins]*num.Uint {
	return [nCoins]*num.Uint{
		num.WadMul(p.balances[0], p.rateMultipliers[0]),
		num.WadMul(p.balances[1], p.rateMultipliers[1]),
	}
}

// spotPrice prices coin 0 in units of coin 1 off the invariant's slope at
// the current balances:
//
//	p = (ANN*xp1/A_PRECISION + Dr*xp1/xp0) / (ANN*xp1/A_PRECISION + Dr)
//
// with Dr = D^3/(4*xp0*xp1). Callers hold the lock.
func (p *Pool) spotPrice() *num.Uint {
	xp := p.xp()
	if xp[0].IsZero() || xp[1].IsZero() {
		return num.Wad()
	}
	d := getD(xp, p.amp)

	ann := num.UintZero().Mul(p.amp, num.NewUint(nCoins))

	dr := num.UintZero().Div(d, num.NewUint(nCoins*nCoins))
	dr.Mul(dr, d)
	dr.Div(dr, xp[0])
	dr.Mul(dr, d)
	dr.Div(dr, xp[1])

	annTerm := num.UintZero().Mul(ann, xp[1])
	annTerm.Div(annTerm, num.NewUint(aPrecision))

	numerator := num.UintZero().Mul(dr, xp[1])
	numerator.Div(numerator, xp[0])
	numerator.Add(numerator, annTerm)
	numerator.Mul(numerator, num.Wad())

	denominator := num.Sum(annTerm, dr)

	return numerator.Div(numerator, denominator)
}

// getD solves the stable-swap invariant for D by Newton iteration.
func getD(xp [nCoins]*num.Uint, amp *num.Uint) *num.Uint {
	s := num.Sum(xp[0], xp[1])
	if s.IsZero() {
		return num.UintZero()
	}

	d := s.Clone()
	ann := num.UintZero().Mul(amp, num.NewUint(nCoins))
	for i := 0; i < 255; i++ {
		// dP = D^3 / (N^N * xp0 * xp1)
		dP := d.Clone()
		for _, x := range xp {
			dP.Mul(dP, d)
			dP.Div(dP, num.UintZero().Mul(x, num.NewUint(nCoins)))
		}
		dPrev := d.Clone()

		// D = (Ann*S/A_PRECISION + dP*N) * D / ((Ann-A_PRECISION)*D/A_PRECISION + (N+1)*dP)
		num1 := num.UintZero().Mul(ann, s)
		num1.Div(num1, num.NewUint(aPrecision))
		num1.Add(num1, num.UintZero().Mul(dP, num.NewUint(nCoins)))
		num1.Mul(num1, d)

		den := num.UintZero().Sub(ann, num.NewUint(aPrecision))
		den.Mul(den, d)
		den.Div(den, num.NewUint(aPrecision))
		den.Add(den, num.UintZero().Mul(dP, num.NewUint(nCoins+1)))

		d = num1.Div(num1, den)

		diff, _ := num.UintZero().Delta(d, dPrev)
		if diff.LTE(num.NewUint(1)) {
			return d
		}
	}
	return d
}

// getY solves the invariant for the output-side balance given the new
// input-side balance x, by Newton iteration.
func getY(x, d, amp *num.Uint) *num.Uint {
	ann := num.UintZero().Mul(amp, num.NewUint(nCoins))

	// c = D^3 * A_PRECISION / (N^2 * x * Ann)
	c := num.UintZero().Mul(d, d)
	c.Div(c, num.UintZero().Mul(x, num.NewUint(nCoins)))
	c.Mul(c, d)
	c.Mul(c, num.NewUint(aPrecision))
	c.Div(c, num.UintZero().Mul(ann, num.NewUint(nCoins)))

	// b = x + D*A_PRECISION/Ann
	b := num.UintZero().Mul(d, num.NewUint(aPrecision))
	b.Div(b, ann)
	b.Add(b, x)

	y := d.Clone()
	for i := 0; i < 255; i++ {
		yPrev := y.Clone()
		// y = (y^2 + c) / (2y + b - D)
		num1 := num.UintZero().Mul(y, y)
		num1.Add(num1, c)

		den := num.UintZero().Mul(y, num.NewUint(2))
		den.Add(den, b)
		den.Sub(den, d)

		y = num1.Div(num1, den)

		diff, _ := num.UintZero().Delta(y, yPrev)
		if diff.LTE(num.NewUint(1)) {
			return y
		}
	}
	return y
}
