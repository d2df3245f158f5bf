package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"mbt-gym-go/config"
	"mbt-gym-go/logs"
	"mbt-gym-go/metrics"
	"mbt-gym-go/report"
)

// Scores a recorded rollout trajectory with the configured reward function
// and prints episode statistics. With a metrics address configured it stays
// up so Prometheus can scrape the result.
func main() {
	cfgPath := flag.String("config", "config.yaml", "reward config path")
	trajPath := flag.String("trajectory", "", "rollout trajectory (JSONL, one transition per line)")
	serve := flag.Bool("serve", false, "keep serving /metrics after the report")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logs.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if *trajPath == "" {
		logger.Error("missing -trajectory")
		os.Exit(1)
	}

	rf, err := config.Build(cfg.Reward)
	if err != nil {
		logger.Error("build reward function", zap.Error(err))
		os.Exit(1)
	}
	rf = metrics.Instrument(rf)

	f, err := os.Open(*trajPath)
	if err != nil {
		logger.Error("open trajectory", zap.Error(err))
		os.Exit(1)
	}
	defer f.Close()

	transitions, err := report.ReadTransitions(f)
	if err != nil {
		logger.Error("decode trajectory", zap.Error(err))
		os.Exit(1)
	}
	if len(transitions) == 0 {
		logger.Error("trajectory is empty")
		os.Exit(1)
	}

	analyzer := report.NewAnalyzer()
	rewards := report.Replay(rf, transitions)
	for i, r := range rewards {
		analyzer.OnStep(r, transitions[i].Terminal)
	}

	summary, err := analyzer.Summary()
	if err != nil {
		logger.Error("summarize", zap.Error(err))
		os.Exit(1)
	}

	last := transitions[len(transitions)-1].Next
	wealth := last.Cash() + last.Price()*last.Inventory()
	metrics.UpdateEpisodeMetrics(summary.Total, wealth)

	logger.Info("episode report",
		zap.String("reward_kind", cfg.Reward.Kind),
		zap.Int("steps", summary.Steps),
		zap.Float64("total_reward", summary.Total),
		zap.Float64("mean_reward", summary.Mean),
		zap.Float64("stddev_reward", summary.StdDev),
		zap.Float64("min_reward", summary.Min),
		zap.Float64("max_reward", summary.Max),
		zap.Float64("terminal_reward", summary.TerminalReward),
		zap.Float64("terminal_wealth", wealth),
	)

	if *serve && cfg.Metrics.Addr != "" {
		metrics.StartMetricsServer(cfg.Metrics.Addr)
		logger.Info("serving metrics", zap.String("addr", cfg.Metrics.Addr))
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
	}
}
