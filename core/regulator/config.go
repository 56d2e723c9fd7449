package regulator

import (
	"github.com/VolumeFi/curve-stablecoin/config/encoding"
	"github.com/VolumeFi/curve-stablecoin/logging"
)

const namedLogger = "regulator"

type Config struct {
	Level encoding.LogLevel

	// PriceDeviation is the initial spot-to-oracle deviation threshold, in
	// wads. The default is wide open, gating starts once governance dials
	// it down.
	PriceDeviation string
	// WorstPriceThreshold is how far below the best-priced pool a pool may
	// report before providing into it is blocked, in wads.
	WorstPriceThreshold string
}

func NewDefaultConfig() Config {
	return Config{
		Level:               encoding.LogLevel{Level: logging.InfoLevel},
		PriceDeviation:      "100000000000000000000", // 100.0
		WorstPriceThreshold: "300000000000000",       // 0.0003
	}
}
