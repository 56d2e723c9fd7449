package regulator

import (
	"github.com/ethereum/go-ethereum/common"
)

// Killed is the two-bit kill switch. Bit 0 disables providing, bit 1
// disables withdrawing.
type Killed uint8

const (
	KilledNone     Killed = 0
	KilledProvide  Killed = 1
	KilledWithdraw Killed = 2
	KilledBoth     Killed = 3
)

func (k Killed) ProvideDisabled() bool {
	return k&KilledProvide != 0
}

func (k Killed) WithdrawDisabled() bool {
	return k&KilledWithdraw != 0
}

func (k Killed) Valid() bool {
	return k <= KilledBoth
}

func (k Killed) String() string {
	switch k {
	case KilledNone:
		return "none"
	case KilledProvide:
		return "provide"
	case KilledWithdraw:
		return "withdraw"
	case KilledBoth:
		return "both"
	default:
		return "invalid"
	}
}

// PricePair binds a pool to the peg keeper acting on it. Pairs used purely
// as price references leave PegKeeper as the zero address.
type PricePair struct {
	Pool      Pool
	PegKeeper common.Address
}
