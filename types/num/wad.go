package num

// Fixed-point helpers for 18-decimal ("wad") arithmetic, the precision
// used across pools, oracles and the regulator.

const wadDecimals = 18

// Wad returns 10^18, the fixed-point unit.
func Wad() *Uint {
	return MustUintFromString("1000000000000000000", 10)
}

// NewWad returns val * 10^18.
func NewWad(val uint64) *Uint {
	return UintZero().Mul(NewUint(val), Wad())
}

// WadFromDecimal converts a decimal number (e.g. "0.95") into its wad
// representation, rounded down. Returns true on overflow or negative input.
func WadFromDecimal(d Decimal) (*Uint, bool) {
	if d.IsNegative() {
		return UintZero(), true
	}
	return UintFromDecimal(d.Shift(wadDecimals))
}

// MustWadFromString is a convenience for wad constants in decimal notation.
func MustWadFromString(s string) *Uint {
	w, overflow := WadFromDecimal(MustDecimalFromString(s))
	if overflow {
		panic("invalid wad string " + s)
	}
	return w
}

// WadMul returns x * y / 10^18, rounded down.
func WadMul(x, y *Uint) *Uint {
	z := UintZero().Mul(x, y)
	return z.Div(z, Wad())
}

// WadDiv returns x * 10^18 / y, rounded down.
func WadDiv(x, y *Uint) *Uint {
	z := UintZero().Mul(x, Wad())
	return z.Div(z, y)
}

// WadToDecimal scales a wad quantity back into its decimal value.
func WadToDecimal(x *Uint) Decimal {
	return DecimalFromUint(x).Shift(-wadDecimals)
}
