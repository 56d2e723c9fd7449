package events

import (
	"context"
	"time"
)

// Time is raised whenever the chain time moves forward.
type Time struct {
	*Base
	blockTime time.Time
}

func NewTime(ctx context.Context, t time.Time) *Time {
	return &Time{
		Base:      newBase(ctx, TimeUpdate),
		blockTime: t,
	}
}

func (t Time) Time() time.Time { return t.blockTime }
