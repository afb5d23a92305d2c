package simulation_repo

import (
	"encoding/json"
	"fmt"

	"spin2win/internal/engine/session"
	"spin2win/internal/model"
	repoModel "spin2win/internal/repository/simulation_repo/model"
)

func toRepoReport(r *model.Report) (repoModel.Report, error) {
	cfg, err := json.Marshal(r.Config)
	if err != nil {
		return repoModel.Report{}, fmt.Errorf("marshal config: %w", err)
	}
	return repoModel.Report{
		ID:              r.ID,
		Fingerprint:     r.Fingerprint,
		Preset:          r.Preset,
		Config:          cfg,
		Source:          string(r.Source),
		TotalSpins:      r.TotalSpins,
		SpinsEvaluated:  r.SpinsEvaluated,
		Hits:            r.Hits,
		Misses:          r.Misses,
		Skipped:         r.Skipped,
		Resets:          r.Resets,
		StartingBalance: int64(r.StartingBalance),
		FinalBalance:    int64(r.FinalBalance),
		LowestBalance:   int64(r.LowestBalance),
		HighestBalance:  int64(r.HighestBalance),
		NetProfit:       int64(r.NetProfit),
		Wagered:         int64(r.Wagered),
		HitRate:         r.HitRate,
		ROI:             r.ROI,
		CreatedAt:       r.CreatedAt,
	}, nil
}

func fromRepoReport(r repoModel.Report) (*model.Report, error) {
	var cfg session.Config
	if err := json.Unmarshal(r.Config, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &model.Report{
		ID:              r.ID,
		Fingerprint:     r.Fingerprint,
		Preset:          r.Preset,
		Config:          cfg,
		Source:          model.SpinSource(r.Source),
		TotalSpins:      r.TotalSpins,
		SpinsEvaluated:  r.SpinsEvaluated,
		Hits:            r.Hits,
		Misses:          r.Misses,
		Skipped:         r.Skipped,
		Resets:          r.Resets,
		StartingBalance: int(r.StartingBalance),
		FinalBalance:    int(r.FinalBalance),
		LowestBalance:   int(r.LowestBalance),
		HighestBalance:  int(r.HighestBalance),
		NetProfit:       int(r.NetProfit),
		Wagered:         int(r.Wagered),
		HitRate:         r.HitRate,
		ROI:             r.ROI,
		CreatedAt:       r.CreatedAt,
	}, nil
}

func fromRepoRound(r repoModel.Round) model.Round {
	return model.Round{
		Index:   r.Index,
		Spin:    r.Spin,
		Seed:    r.Seed,
		Hit:     r.Hit,
		Stake:   int(r.Stake),
		Net:     int(r.Net),
		Balance: int(r.Balance),
		Reset:   r.Reset,
	}
}
