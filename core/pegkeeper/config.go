package pegkeeper

import (
	"time"

	"github.com/VolumeFi/curve-stablecoin/config/encoding"
	"github.com/VolumeFi/curve-stablecoin/logging"
)

const namedLogger = "pegkeeper"

type Config struct {
	Level encoding.LogLevel

	// ActionDelay is the minimum time between two updates of the same
	// keeper, so a single block of price action cannot be farmed.
	ActionDelay encoding.Duration
}

func NewDefaultConfig() Config {
	return Config{
		Level:       encoding.LogLevel{Level: logging.InfoLevel},
		ActionDelay: encoding.Duration{Duration: 15 * time.Minute},
	}
}
