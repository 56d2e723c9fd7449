package num

import (
	"math/big"

	"github.com/shopspring/decimal"
)

type Decimal = decimal.Decimal

var (
	dzero = decimal.Zero
	done  = decimal.NewFromInt(1)
)

func DecimalZero() Decimal {
	return dzero
}

func DecimalOne() Decimal {
	return done
}

func DecimalFromFloat(f float64) Decimal {
	return decimal.NewFromFloat(f)
}

func DecimalFromInt64(i int64) Decimal {
	return decimal.NewFromInt(i)
}

func DecimalFromBigInt(value *big.Int, exp int32) Decimal {
	return decimal.NewFromBigInt(value, exp)
}

func DecimalFromUint(u *Uint) Decimal {
	return decimal.NewFromBigInt(u.BigInt(), 0)
}

func DecimalFromString(s string) (Decimal, error) {
	return decimal.NewFromString(s)
}

func MustDecimalFromString(s string) Decimal {
	d, err := DecimalFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
