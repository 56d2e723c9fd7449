package events

import (
	"context"
)

type Type int

const (
	// TimeUpdate chain time moved forward.
	TimeUpdate Type = iota + 1
	// KillSwitchUpdate the regulator kill switch changed state.
	KillSwitchUpdate
	// AdminUpdate regulator admin handed over.
	AdminUpdate
	// EmergencyAdminUpdate regulator emergency admin changed.
	EmergencyAdminUpdate
	// PriceDeviationUpdate deviation threshold changed.
	PriceDeviationUpdate
	// WorstPriceThresholdUpdate cross-pool price order threshold changed.
	WorstPriceThresholdUpdate
	// PricePairsUpdate pairs added to or removed from the registry.
	PricePairsUpdate
	// PegKeeperUpdate a peg keeper provided or withdrew liquidity.
	PegKeeperUpdate
)

var eventStrings = map[Type]string{
	TimeUpdate:                "TimeUpdate",
	KillSwitchUpdate:          "KillSwitchUpdate",
	AdminUpdate:               "AdminUpdate",
	EmergencyAdminUpdate:      "EmergencyAdminUpdate",
	PriceDeviationUpdate:      "PriceDeviationUpdate",
	WorstPriceThresholdUpdate: "WorstPriceThresholdUpdate",
	PricePairsUpdate:          "PricePairsUpdate",
	PegKeeperUpdate:           "PegKeeperUpdate",
}

func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}

// Event the base event interface type.
type Event interface {
	Type() Type
	Context() context.Context
}

// Base common denominator all event-bus events share.
type Base struct {
	ctx context.Context
	et  Type
}

func newBase(ctx context.Context, t Type) *Base {
	return &Base{
		ctx: ctx,
		et:  t,
	}
}

// Type returns the event type.
func (b Base) Type() Type {
	return b.et
}

// Context returns the context the event was raised with.
func (b Base) Context() context.Context {
	return b.ctx
}
