package events

import (
	"context"

	"github.com/VolumeFi/curve-stablecoin/types/num"

	"github.com/ethereum/go-ethereum/common"
)

// KillSwitchUpdated is raised when the regulator kill switch changes state.
type KillSwitchUpdated struct {
	*Base
	state  uint8
	caller common.Address
}

func NewKillSwitchUpdated(ctx context.Context, state uint8, caller common.Address) *KillSwitchUpdated {
	return &KillSwitchUpdated{
		Base:   newBase(ctx, KillSwitchUpdate),
		state:  state,
		caller: caller,
	}
}

func (e KillSwitchUpdated) State() uint8           { return e.state }
func (e KillSwitchUpdated) Caller() common.Address { return e.caller }

// AdminUpdated is raised when the regulator admin hands over to a new address.
type AdminUpdated struct {
	*Base
	admin common.Address
}

func NewAdminUpdated(ctx context.Context, admin common.Address) *AdminUpdated {
	return &AdminUpdated{
		Base:  newBase(ctx, AdminUpdate),
		admin: admin,
	}
}

func (e AdminUpdated) Admin() common.Address { return e.admin }

// EmergencyAdminUpdated is raised when the emergency admin changes.
type EmergencyAdminUpdated struct {
	*Base
	admin common.Address
}

func NewEmergencyAdminUpdated(ctx context.Context, admin common.Address) *EmergencyAdminUpdated {
	return &EmergencyAdminUpdated{
		Base:  newBase(ctx, EmergencyAdminUpdate),
		admin: admin,
	}
}

func (e EmergencyAdminUpdated) Admin() common.Address { return e.admin }

// PriceDeviationUpdated is raised when the deviation threshold changes.
type PriceDeviationUpdated struct {
	*Base
	deviation *num.Uint
}

func NewPriceDeviationUpdated(ctx context.Context, deviation *num.Uint) *PriceDeviationUpdated {
	return &PriceDeviationUpdated{
		Base:      newBase(ctx, PriceDeviationUpdate),
		deviation: deviation.Clone(),
	}
}

func (e PriceDeviationUpdated) Deviation() *num.Uint { return e.deviation.Clone() }

// WorstPriceThresholdUpdated is raised when the price order threshold changes.
type WorstPriceThresholdUpdated struct {
	*Base
	threshold *num.Uint
}

func NewWorstPriceThresholdUpdated(ctx context.Context, threshold *num.Uint) *WorstPriceThresholdUpdated {
	return &WorstPriceThresholdUpdated{
		Base:      newBase(ctx, WorstPriceThresholdUpdate),
		threshold: threshold.Clone(),
	}
}

func (e WorstPriceThresholdUpdated) Threshold() *num.Uint { return e.threshold.Clone() }

// PricePairsUpdated is raised when pairs are added to or removed from the
// registry.
type PricePairsUpdated struct {
	*Base
	added   []common.Address
	removed []common.Address
}

func NewPricePairsUpdated(ctx context.Context, added, removed []common.Address) *PricePairsUpdated {
	return &PricePairsUpdated{
		Base:    newBase(ctx, PricePairsUpdate),
		added:   added,
		removed: removed,
	}
}

func (e PricePairsUpdated) Added() []common.Address   { return e.added }
func (e PricePairsUpdated) Removed() []common.Address { return e.removed }

// PegKeeperUpdated is raised when a peg keeper provides or withdraws.
type PegKeeperUpdated struct {
	*Base
	keeper   common.Address
	provided bool
	amount   *num.Uint
	debt     *num.Uint
}

func NewPegKeeperUpdated(ctx context.Context, keeper common.Address, provided bool, amount, debt *num.Uint) *PegKeeperUpdated {
	return &PegKeeperUpdated{
		Base:     newBase(ctx, PegKeeperUpdate),
		keeper:   keeper,
		provided: provided,
		amount:   amount.Clone(),
		debt:     debt.Clone(),
	}
}

func (e PegKeeperUpdated) Keeper() common.Address { return e.keeper }
func (e PegKeeperUpdated) Provided() bool         { return e.provided }
func (e PegKeeperUpdated) Amount() *num.Uint      { return e.amount.Clone() }
func (e PegKeeperUpdated) Debt() *num.Uint        { return e.debt.Clone() }
