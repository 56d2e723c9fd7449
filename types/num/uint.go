package num

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Uint a wrapper to a big unsigned int.
type Uint struct {
	u uint256.Int
}

// NewUint creates a new Uint with the value of the
// uint64 passed as a parameter.
func NewUint(val uint64) *Uint {
	return &Uint{*uint256.NewInt(val)}
}

// UintZero returns a new Uint set to zero.
func UintZero() *Uint {
	return NewUint(0)
}

// Min returns the smallest of the 2 numbers.
func Min(a, b *Uint) *Uint {
	if a.LT(b) {
		return a
	}
	return b
}

// Max returns the largest of the 2 numbers.
func Max(a, b *Uint) *Uint {
	if a.GT(b) {
		return a
	}
	return b
}

// MaxUint returns the maximum value representable in 256 bits.
func MaxUint() *Uint {
	z := UintZero()
	z.u.SetAllOne()
	return z
}

// UintFromBig construct a new Uint with a big.Int.
// Returns true if the value is negative or does not fit in 256 bits.
func UintFromBig(b *big.Int) (*Uint, bool) {
	if b.Sign() < 0 {
		return UintZero(), true
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return UintZero(), true
	}
	return &Uint{*u}, false
}

// UintFromDecimal returns a new Uint from a Decimal, the Uint is rounded
// down to the nearest integer. Returns true on overflow.
func UintFromDecimal(d Decimal) (*Uint, bool) {
	return UintFromBig(d.BigInt())
}

// UintFromString creates a new Uint from a string interpreted using
// the given base. Returns true if an error or overflow happened.
func UintFromString(str string, base int) (*Uint, bool) {
	b, ok := big.NewInt(0).SetString(str, base)
	if !ok {
		return UintZero(), true
	}
	return UintFromBig(b)
}

// MustUintFromString is UintFromString for string constants known to
// be valid, it panics otherwise.
func MustUintFromString(str string, base int) *Uint {
	u, overflow := UintFromString(str, base)
	if overflow {
		panic(fmt.Sprintf("invalid uint string %q", str))
	}
	return u
}

// Sum just removes the need to write num.UintZero().AddSum(x, y, z)
// so you can write num.Sum(x, y, z) instead, equivalent to x + y + z.
func Sum(vals ...*Uint) *Uint {
	return UintZero().AddSum(vals...)
}

func (z *Uint) Set(oth *Uint) *Uint {
	z.u.Set(&oth.u)
	return z
}

func (z *Uint) SetUint64(val uint64) *Uint {
	z.u.SetUint64(val)
	return z
}

func (z Uint) Uint64() uint64 {
	return z.u.Uint64()
}

func (z Uint) BigInt() *big.Int {
	return z.u.ToBig()
}

func (z Uint) ToDecimal() Decimal {
	return DecimalFromUint(&z)
}

// Add will add x and y then store the result into z.
// This is equivalent to `z = x + y`, z is returned
// for convenience, no new variable is created.
func (z *Uint) Add(x, y *Uint) *Uint {
	z.u.Add(&x.u, &y.u)
	return z
}

// AddSum adds multiple values at the same time to a given uint
// so x.AddSum(y, z) is equivalent to x + y + z.
func (z *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		z.u.Add(&z.u, &x.u)
	}
	return z
}

// Sub will subtract y from x then store the result into z.
// This is equivalent to `z = x - y`.
func (z *Uint) Sub(x, y *Uint) *Uint {
	z.u.Sub(&x.u, &y.u)
	return z
}

// Delta will subtract y from x and store the result unless x-y overflowed,
// in which case the neg field will be set and the result of y - x is set
// instead.
func (z *Uint) Delta(x, y *Uint) (*Uint, bool) {
	if x.GTE(y) {
		return z.Sub(x, y), false
	}
	return z.Sub(y, x), true
}

// Mul will multiply x and y then store the result into z.
// This is equivalent to `z = x * y`.
func (z *Uint) Mul(x, y *Uint) *Uint {
	z.u.Mul(&x.u, &y.u)
	return z
}

// Div will divide x by y then store the result into z.
// This is equivalent to `z = x / y`.
func (z *Uint) Div(x, y *Uint) *Uint {
	z.u.Div(&x.u, &y.u)
	return z
}

// LT with check if the value stored in z is
// lesser than oth, this is equivalent to:
// `z < oth`.
func (z Uint) LT(oth *Uint) bool {
	return z.u.Lt(&oth.u)
}

// LTE with check if the value stored in z is
// lesser than or equal to oth, this is equivalent to:
// `z <= oth`.
func (z Uint) LTE(oth *Uint) bool {
	return z.u.Lt(&oth.u) || z.u.Eq(&oth.u)
}

// EQ with check if the value stored in z is
// equal to oth, this is equivalent to:
// `z == oth`.
func (z Uint) EQ(oth *Uint) bool {
	return z.u.Eq(&oth.u)
}

// NEQ with check if the value stored in z is
// different than oth, this is equivalent to:
// `z != oth`.
func (z Uint) NEQ(oth *Uint) bool {
	return !z.u.Eq(&oth.u)
}

// GT with check if the value stored in z is
// greater than oth, this is equivalent to:
// `z > oth`.
func (z Uint) GT(oth *Uint) bool {
	return z.u.Gt(&oth.u)
}

// GTE with check if the value stored in z is
// greater than or equal to oth, this is equivalent to:
// `z >= oth`.
func (z Uint) GTE(oth *Uint) bool {
	return z.u.Gt(&oth.u) || z.u.Eq(&oth.u)
}

// IsZero return whether z == 0.
func (z Uint) IsZero() bool {
	return z.u.IsZero()
}

// Clone creates a copy of the Uint so it can be
// changed without affecting the original.
func (z Uint) Clone() *Uint {
	return &Uint{z.u}
}

func (z Uint) String() string {
	return z.u.ToBig().String()
}

func (z Uint) Format(s fmt.State, ch rune) {
	z.u.Format(s, ch)
}
