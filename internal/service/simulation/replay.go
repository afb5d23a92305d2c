package simulation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"spin2win/internal/engine/session"
	"spin2win/internal/model"
)

const ratioPlaces = 6

// Replay Прогоняет спины через свежий движок и собирает отчёт.
// Балансы в отчёте сквозные: сброс сессии после попадания не обнуляет накопленный результат.
func Replay(cfg session.Config, spins []int) (*model.Report, error) {
	engine, err := session.New(cfg)
	if err != nil {
		return nil, err
	}
	cfg = engine.Config()

	rep := &model.Report{
		Config:          cfg,
		TotalSpins:      len(spins),
		StartingBalance: cfg.StartingBalance,
		FinalBalance:    cfg.StartingBalance,
		LowestBalance:   cfg.StartingBalance,
		HighestBalance:  cfg.StartingBalance,
	}

	// prev Баланс движка до спина; после сброса движок снова начинает со стартового
	prev := cfg.StartingBalance
	for i, n := range spins {
		res, err := engine.Submit(n)
		if err != nil {
			return nil, fmt.Errorf("spin #%d: %w", i, err)
		}

		if res.Skipped {
			rep.Skipped++
		}
		if res.Hit == nil {
			continue
		}

		rep.FinalBalance += res.Balance - prev
		prev = res.Balance
		if res.Reset {
			rep.Resets++
			prev = cfg.StartingBalance
		}

		if *res.Hit {
			rep.Hits++
		} else {
			rep.Misses++
		}
		rep.Wagered += res.Stake * res.NumbersBet
		rep.LowestBalance = min(rep.LowestBalance, rep.FinalBalance)
		rep.HighestBalance = max(rep.HighestBalance, rep.FinalBalance)

		rep.Rounds = append(rep.Rounds, model.Round{
			Index:   i,
			Spin:    n,
			Seed:    res.BetSeed,
			Hit:     *res.Hit,
			Stake:   res.Stake,
			Net:     *res.Net,
			Balance: rep.FinalBalance,
			Reset:   res.Reset,
		})
	}

	rep.SpinsEvaluated = rep.Hits + rep.Misses
	rep.NetProfit = rep.FinalBalance - rep.StartingBalance
	rep.HitRate = ratio(rep.Hits, rep.SpinsEvaluated)
	rep.ROI = ratio(rep.NetProfit, rep.Wagered)

	return rep, nil
}

func ratio(num, den int) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(num)).DivRound(decimal.NewFromInt(int64(den)), ratioPlaces)
}
