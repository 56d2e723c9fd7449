/*
Command pegsim runs a self-contained peg keeper simulation: a handful of
stable-swap pools take random flow, the aggregator tracks their prices, and
peg keepers provide or withdraw stablecoin whenever the regulator lets them.

Syntax:

	pegsim [-c config.toml] [--pools 3] [--steps 200] [--seed 42]
*/
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/VolumeFi/curve-stablecoin/config"
	"github.com/VolumeFi/curve-stablecoin/config/encoding"
	"github.com/VolumeFi/curve-stablecoin/core/aggregator"
	"github.com/VolumeFi/curve-stablecoin/core/blocktime"
	"github.com/VolumeFi/curve-stablecoin/core/broker"
	"github.com/VolumeFi/curve-stablecoin/core/events"
	"github.com/VolumeFi/curve-stablecoin/core/pegkeeper"
	"github.com/VolumeFi/curve-stablecoin/core/regulator"
	"github.com/VolumeFi/curve-stablecoin/core/stableswap"
	"github.com/VolumeFi/curve-stablecoin/logging"
	"github.com/VolumeFi/curve-stablecoin/metrics"
	"github.com/VolumeFi/curve-stablecoin/types/num"
)

type options struct {
	Config      string            `short:"c" long:"config" description:"path to a TOML configuration file"`
	Pools       int               `long:"pools" default:"3" description:"number of pools and peg keepers"`
	Steps       int               `long:"steps" default:"200" description:"number of simulation steps"`
	Interval    encoding.Duration `long:"interval" default:"20m" description:"chain time advanced per step"`
	Seed        int64             `long:"seed" default:"42" description:"seed for the random flow"`
	MetricsAddr string            `long:"metrics-addr" description:"serve prometheus metrics on this address"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Read(opts.Config)
	if err != nil {
		return err
	}

	log := logging.NewLoggerFromConfig(cfg.Logging)
	defer log.AtExit()

	if opts.MetricsAddr != "" {
		go func() {
			if err := metrics.Start(opts.MetricsAddr); err != nil {
				log.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	ctx := context.Background()
	admin := common.BytesToAddress([]byte("admin"))

	ts := blocktime.New(time.Now())
	bkr := broker.New(log)
	agg := aggregator.New(log, cfg.Aggregator, ts, admin)
	reg := regulator.New(log, cfg.Regulator, bkr, agg, admin, admin)
	ts.NotifyOnTick(agg.OnTick, func(ctx context.Context, t time.Time) {
		bkr.Send(events.NewTime(ctx, t))
	})

	seed := num.NewWad(1000000)
	pools := make([]*stableswap.Pool, 0, opts.Pools)
	keepers := make([]*pegkeeper.Keeper, 0, opts.Pools)
	pairs := make([]regulator.PricePair, 0, opts.Pools)
	for i := 0; i < opts.Pools; i++ {
		pool := stableswap.New(log, cfg.StableSwap, ts, common.BytesToAddress([]byte{0x10, byte(i)}))
		pool.AddLiquidity(ctx, [2]*num.Uint{seed.Clone(), seed.Clone()})
		if err := agg.AddPricePair(ctx, admin, pool); err != nil {
			return err
		}

		keeperAddr := common.BytesToAddress([]byte{0x20, byte(i)})
		keeper := pegkeeper.New(log, cfg.PegKeeper, bkr, ts, keeperAddr, pool, reg)

		pools = append(pools, pool)
		keepers = append(keepers, keeper)
		pairs = append(pairs, regulator.PricePair{Pool: pool, PegKeeper: keeperAddr})
	}
	if err := reg.AddPricePairs(ctx, admin, pairs); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	for step := 0; step < opts.Steps; step++ {
		// random flow against a random pool, up to 1% of the seed size
		pool := pools[rng.Intn(len(pools))]
		side := rng.Intn(2)
		size := num.NewWad(uint64(1 + rng.Intn(10000)))
		if _, err := pool.Exchange(ctx, side, 1-side, size); err != nil {
			log.Warn("exchange rejected", zap.Error(err))
		}

		ts.Forward(ctx, opts.Interval.Get())

		for _, keeper := range keepers {
			amount, err := keeper.Update(ctx)
			if err != nil {
				log.Debug("keeper skipped",
					zap.String("keeper", keeper.Address().Hex()),
					zap.Error(err),
				)
				continue
			}
			log.Info("keeper acted",
				zap.String("keeper", keeper.Address().Hex()),
				zap.String("amount", amount.String()),
				zap.String("debt", keeper.Debt().String()),
			)
		}

		if step%10 == 0 {
			log.Info("tick",
				zap.Int("step", step),
				zap.String("aggregate", agg.Price().String()),
			)
		}
	}

	for i, keeper := range keepers {
		log.Info("final state",
			zap.String("keeper", keeper.Address().Hex()),
			zap.String("debt", keeper.Debt().String()),
			zap.String("pool_price", pools[i].PriceOracle().String()),
		)
	}
	return nil
}
