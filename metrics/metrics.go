// Package metrics provides Prometheus metrics for reward evaluation
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mbt-gym-go/reward"
)

var (
	// StepReward 单步奖励分布
	StepReward = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rl_step_reward",
		Help:    "Per-step reward values",
		Buckets: prometheus.LinearBuckets(-100, 20, 11),
	})

	// EpisodeReward 最近一个 episode 的累计奖励
	EpisodeReward = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rl_episode_reward",
		Help: "Total reward of the most recent episode",
	})

	// TerminalWealth 最近一个 episode 的终端财富
	TerminalWealth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rl_terminal_wealth",
		Help: "Mark-to-market wealth at the last terminal step",
	})

	// StepsTotal 已计算奖励的步数
	StepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rl_steps_total",
		Help: "Number of transitions scored",
	})
)

// UpdateEpisodeMetrics 更新 episode 级指标
func UpdateEpisodeMetrics(totalReward, terminalWealth float64) {
	EpisodeReward.Set(totalReward)
	TerminalWealth.Set(terminalWealth)
}

// StartMetricsServer 启动Prometheus指标服务器
func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		_ = http.ListenAndServe(addr, nil)
	}()
}

// instrumented wraps a reward function and records every computed value.
// The inner variant stays pure; observation happens out here.
type instrumented struct {
	inner reward.RewardFunction
}

// Instrument decorates rf with step metrics.
func Instrument(rf reward.RewardFunction) reward.RewardFunction {
	return instrumented{inner: rf}
}

func (m instrumented) Calculate(current reward.Observation, action reward.Action, next reward.Observation, isTerminal bool) float64 {
	r := m.inner.Calculate(current, action, next, isTerminal)
	StepReward.Observe(r)
	StepsTotal.Inc()
	return r
}
