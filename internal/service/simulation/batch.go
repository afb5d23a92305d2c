package simulation

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"spin2win/internal/model"
	"spin2win/internal/service"
)

// RunBatch Независимые случайные прогоны параллельно. Прогон i использует seed+i. Ничего не сохраняет
func (s *serv) RunBatch(ctx context.Context, req model.BatchRequest) (*model.BatchReport, error) {
	if req.Runs <= 0 || req.Runs > MaxRuns {
		return nil, fmt.Errorf("%w: runs must be in 1..%d", service.ErrInvalidRequest, MaxRuns)
	}
	if req.Count <= 0 || req.Count > MaxSpins {
		return nil, fmt.Errorf("%w: count must be in 1..%d", service.ErrInvalidRequest, MaxSpins)
	}

	cfg, preset, err := service.ResolveConfig(s.presets, req.Preset, req.Config)
	if err != nil {
		return nil, err
	}

	reports := make([]model.Report, req.Runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range req.Runs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := Replay(cfg, RandomSpins(req.Count, req.Seed+uint64(i)))
			if err != nil {
				return err
			}
			rep.Preset = preset
			rep.Source = model.SpinSourceRandom
			rep.Rounds = nil
			reports[i] = *rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := aggregate(reports, req.Count)

	s.log.Info("simulation batch finished",
		zap.Int("runs", out.Runs),
		zap.Int("spins_per_run", out.SpinsPerRun),
		zap.String("mean_net_profit", out.MeanNetProfit.String()),
		zap.Int("profitable_runs", out.ProfitableRuns),
	)

	return out, nil
}

func aggregate(reports []model.Report, count int) *model.BatchReport {
	out := &model.BatchReport{
		Runs:        len(reports),
		SpinsPerRun: count,
		Reports:     reports,
	}
	if len(reports) == 0 {
		return out
	}

	sumProfit := decimal.Zero
	sumHitRate := decimal.Zero
	out.BestNetProfit = reports[0].NetProfit
	out.WorstNetProfit = reports[0].NetProfit
	out.LowestBalance = reports[0].LowestBalance

	for _, r := range reports {
		sumProfit = sumProfit.Add(decimal.NewFromInt(int64(r.NetProfit)))
		sumHitRate = sumHitRate.Add(r.HitRate)
		out.BestNetProfit = max(out.BestNetProfit, r.NetProfit)
		out.WorstNetProfit = min(out.WorstNetProfit, r.NetProfit)
		out.LowestBalance = min(out.LowestBalance, r.LowestBalance)
		if r.NetProfit > 0 {
			out.ProfitableRuns++
		}
	}

	n := decimal.NewFromInt(int64(len(reports)))
	out.MeanNetProfit = sumProfit.DivRound(n, 2)
	out.MeanHitRate = sumHitRate.DivRound(n, ratioPlaces)

	return out
}
