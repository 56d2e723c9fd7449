package aggregator

import (
	"time"

	"github.com/VolumeFi/curve-stablecoin/config/encoding"
	"github.com/VolumeFi/curve-stablecoin/logging"
)

const namedLogger = "aggregator"

type Config struct {
	Level encoding.LogLevel

	// Sigma of the Gaussian reweighting. Pools whose price sits far from
	// the cluster get their weight crushed so a single depegged pool
	// cannot drag the aggregate.
	Sigma float64
	// Averaging window of the aggregate price.
	Window encoding.Duration
}

func NewDefaultConfig() Config {
	return Config{
		Level:  encoding.LogLevel{Level: logging.InfoLevel},
		Sigma:  0.001,
		Window: encoding.Duration{Duration: 600 * time.Second},
	}
}
