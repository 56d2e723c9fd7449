package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/VolumeFi/curve-stablecoin/core/aggregator"
	"github.com/VolumeFi/curve-stablecoin/core/pegkeeper"
	"github.com/VolumeFi/curve-stablecoin/core/regulator"
	"github.com/VolumeFi/curve-stablecoin/core/stableswap"
	"github.com/VolumeFi/curve-stablecoin/logging"
)

// Config ties together the per-engine configurations.
type Config struct {
	Logging    logging.Config
	Regulator  regulator.Config
	StableSwap stableswap.Config
	Aggregator aggregator.Config
	PegKeeper  pegkeeper.Config
}

// NewDefaultConfig returns the whole tree of engine defaults.
func NewDefaultConfig() Config {
	return Config{
		Logging:    logging.NewDefaultConfig(),
		Regulator:  regulator.NewDefaultConfig(),
		StableSwap: stableswap.NewDefaultConfig(),
		Aggregator: aggregator.NewDefaultConfig(),
		PegKeeper:  pegkeeper.NewDefaultConfig(),
	}
}

// Read loads a TOML configuration file over the defaults, so a partial
// file only overrides what it names.
func Read(path string) (Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "couldn't read configuration file %s", path)
	}
	return cfg, nil
}
