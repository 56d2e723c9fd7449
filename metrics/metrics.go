package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GateChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "regulator_gate_checks_total",
		Help: "Gating decisions taken by the regulator",
	}, []string{"gate", "outcome"})

	KillSwitchState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "regulator_kill_switch_state",
		Help: "Current kill switch state (0 none, 1 provide, 2 withdraw, 3 both)",
	})

	PegKeeperActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "peg_keeper_actions_total",
		Help: "Provide/withdraw actions executed by peg keepers",
	}, []string{"keeper", "action"})

	PegKeeperDebt = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "peg_keeper_debt_wad",
		Help: "Outstanding stablecoin debt per peg keeper, in wads",
	}, []string{"keeper"})
)
