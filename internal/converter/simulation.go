package converter

import (
	"spin2win/internal/api/dto/simulation"
	"spin2win/internal/model"
)

func ToSimulationRequest(req simulation.SimulationRequest) model.SimulationRequest {
	out := model.SimulationRequest{
		Preset: req.Preset,
		Config: req.Config,
		Spins:  req.Spins,
	}
	switch {
	case req.Random != nil:
		out.Source = model.SpinSourceRandom
		out.Count = req.Random.Count
		out.Seed = req.Random.Seed
	case req.Spins != nil:
		out.Source = model.SpinSourceList
	default:
		out.Source = model.SpinSourceLive
	}
	return out
}

func ToBatchRequest(req simulation.BatchRequest) model.BatchRequest {
	return model.BatchRequest{
		Preset: req.Preset,
		Config: req.Config,
		Runs:   req.Runs,
		Count:  req.Count,
		Seed:   req.Seed,
	}
}

func ToReportResponse(r model.Report) simulation.ReportResponse {
	out := simulation.ReportResponse{
		ID:              r.ID,
		Fingerprint:     r.Fingerprint,
		Preset:          r.Preset,
		Config:          r.Config,
		Source:          string(r.Source),
		TotalSpins:      r.TotalSpins,
		SpinsEvaluated:  r.SpinsEvaluated,
		Hits:            r.Hits,
		Misses:          r.Misses,
		Skipped:         r.Skipped,
		Resets:          r.Resets,
		StartingBalance: r.StartingBalance,
		FinalBalance:    r.FinalBalance,
		LowestBalance:   r.LowestBalance,
		HighestBalance:  r.HighestBalance,
		NetProfit:       r.NetProfit,
		Wagered:         r.Wagered,
		HitRate:         r.HitRate,
		ROI:             r.ROI,
	}
	if !r.CreatedAt.IsZero() {
		createdAt := r.CreatedAt
		out.CreatedAt = &createdAt
	}
	if len(r.Rounds) > 0 {
		out.Rounds = make([]simulation.Round, len(r.Rounds))
		for i, rd := range r.Rounds {
			out.Rounds[i] = simulation.Round{
				Index:   rd.Index,
				Spin:    rd.Spin,
				Seed:    rd.Seed,
				Hit:     rd.Hit,
				Stake:   rd.Stake,
				Net:     rd.Net,
				Balance: rd.Balance,
				Reset:   rd.Reset,
			}
		}
	}
	return out
}

func ToBatchResponse(b model.BatchReport) simulation.BatchResponse {
	reports := make([]simulation.ReportResponse, len(b.Reports))
	for i, r := range b.Reports {
		reports[i] = ToReportResponse(r)
	}
	return simulation.BatchResponse{
		Runs:           b.Runs,
		SpinsPerRun:    b.SpinsPerRun,
		MeanNetProfit:  b.MeanNetProfit,
		MeanHitRate:    b.MeanHitRate,
		BestNetProfit:  b.BestNetProfit,
		WorstNetProfit: b.WorstNetProfit,
		LowestBalance:  b.LowestBalance,
		ProfitableRuns: b.ProfitableRuns,
		Reports:        reports,
	}
}
