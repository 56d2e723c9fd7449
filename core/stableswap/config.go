package stableswap

import (
	"time"

	"github.com/VolumeFi/curve-stablecoin/config/encoding"
	"github.com/VolumeFi/curve-stablecoin/logging"
)

const namedLogger = "stableswap"

type Config struct {
	Level encoding.LogLevel

	// Amplification factor A. Higher values flatten the curve around the
	// peg, lower values behave closer to a constant-product pool.
	Amplification uint64
	// Swap fee, parts per 1e10.
	Fee uint64
	// Averaging window of the price oracle.
	OracleWindow encoding.Duration
}

func NewDefaultConfig() Config {
	return Config{
		Level:         encoding.LogLevel{Level: logging.InfoLevel},
		Amplification: 100,
		Fee:           1000000, // 0.01%
		OracleWindow:  encoding.Duration{Duration: 866 * time.Second},
	}
}
