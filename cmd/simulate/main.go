package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"spin2win/internal/config"
	"spin2win/internal/config/env"
	"spin2win/internal/logger"
	"spin2win/internal/model"
	"spin2win/internal/service"
	"spin2win/internal/service/simulation"
)

func main() {
	var (
		configPath = flag.String("config", env.StrategyConfigPath(), "strategy presets file")
		preset     = flag.String("preset", "", "preset name (default preset when empty)")
		spinsArg   = flag.String("spins", "", "comma separated spins; recorded live session when empty")
		random     = flag.Int("random", 0, "generate this many random spins instead")
		seed       = flag.Uint64("seed", 1, "seed for -random")
		verbose    = flag.Bool("v", false, "print every evaluated spin")
	)
	flag.Parse()

	_ = config.Load(".env")
	log, err := logger.New(env.NewLoggerConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	presets, err := env.NewStrategyConfigFromYAML(*configPath)
	if err != nil {
		log.Fatal("load presets", zap.Error(err))
	}
	cfg, name, err := service.ResolveConfig(presets, *preset, nil)
	if err != nil {
		log.Fatal("resolve preset", zap.Error(err))
	}

	source := model.SpinSourceLive
	spins := simulation.LiveSpins()
	switch {
	case *random > 0:
		source = model.SpinSourceRandom
		spins = simulation.RandomSpins(*random, *seed)
	case *spinsArg != "":
		source = model.SpinSourceList
		if spins, err = parseSpins(*spinsArg); err != nil {
			log.Fatal("parse spins", zap.Error(err))
		}
	}

	rep, err := simulation.Replay(cfg, spins)
	if err != nil {
		log.Fatal("replay", zap.Error(err))
	}
	rep.Preset = name
	rep.Source = source

	printReport(os.Stdout, rep, *verbose)
}

func parseSpins(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("spin %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func printReport(w io.Writer, rep *model.Report, verbose bool) {
	if verbose {
		for _, rd := range rep.Rounds {
			outcome := "MISS"
			if rd.Hit {
				outcome = "HIT"
			}
			fmt.Fprintf(w, "Spin #%d: %2d seed %s -> %-4s | %s | Bankroll: %d\n",
				rd.Index, rd.Spin, rd.Seed, outcome, signed(rd.Net), rd.Balance)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "FINAL STRATEGY SUMMARY")
	if rep.Preset != "" {
		fmt.Fprintf(w, "Preset: %s | Source: %s\n", rep.Preset, rep.Source)
	}
	fmt.Fprintf(w, "Total Spins: %d | Evaluated: %d | Skipped: %d\n", rep.TotalSpins, rep.SpinsEvaluated, rep.Skipped)
	fmt.Fprintf(w, "Total Hits: %d | Total Misses: %d | Hit Rate: %s\n", rep.Hits, rep.Misses, rep.HitRate.StringFixed(4))
	fmt.Fprintf(w, "Lowest Bankroll: %d\n", rep.LowestBalance)
	fmt.Fprintf(w, "Highest Bankroll: %d\n", rep.HighestBalance)
	fmt.Fprintf(w, "Final Bankroll: %d\n", rep.FinalBalance)
	fmt.Fprintf(w, "Net Profit: %s | Wagered: %d | ROI: %s\n", signed(rep.NetProfit), rep.Wagered, rep.ROI.StringFixed(4))
	if rep.Resets > 0 {
		fmt.Fprintf(w, "Session resets: %d\n", rep.Resets)
	}
}

func signed(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
