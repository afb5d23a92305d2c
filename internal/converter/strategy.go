package converter

import (
	"spin2win/internal/api/dto/strategy"
	"spin2win/internal/engine/seed"
	"spin2win/internal/engine/session"
	"spin2win/internal/model"
)

func ToCreateSession(req strategy.CreateSessionRequest) model.CreateSession {
	return model.CreateSession{
		Preset: req.Preset,
		Config: req.Config,
	}
}

func ToCreateSessionResponse(data model.SessionData) strategy.CreateSessionResponse {
	return strategy.CreateSessionResponse{
		SessionID: data.Session.ID,
		Token:     data.Token,
		Preset:    data.Session.Preset,
		Snapshot:  ToSnapshotResponse(data.Snapshot),
	}
}

func ToSpinResponse(res session.Result) strategy.SpinResponse {
	return strategy.SpinResponse{
		Spin:       res.Spin,
		State:      string(res.State),
		BetSeed:    res.BetSeed,
		BetOn:      res.BetOn,
		Hit:        res.Hit,
		Net:        res.Net,
		Stake:      res.Stake,
		NumbersBet: res.NumbersBet,
		Skipped:    res.Skipped,
		Seed:       toSeed(res.Seed),
		Prediction: nonNil(res.Prediction),
		Rebuilt:    res.Rebuilt,
		Transform:  res.Transform,
		Balance:    res.Balance,
		StakeState: res.StakeState,
		Ledger:     res.Ledger,
		Reset:      res.Reset,
	}
}

func ToSnapshotResponse(s session.Snapshot) strategy.SnapshotResponse {
	return strategy.SnapshotResponse{
		State:      string(s.State),
		Window:     nonNil(s.Window),
		Seed:       toSeed(s.Seed),
		Prediction: nonNil(s.Prediction),
		Transform:  s.Transform,
		StakeState: s.StakeState,
		Ledger:     s.Ledger,
		Config:     s.Config,
		Resets:     s.Resets,
	}
}

func ToPresetsResponse(presets map[string]session.Config) strategy.PresetsResponse {
	return strategy.PresetsResponse{Presets: presets}
}

func toSeed(s *seed.Seed) *strategy.Seed {
	if s == nil {
		return nil
	}
	return &strategy.Seed{
		Text:     s.Text,
		Digits:   s.Digits,
		Value:    s.Value,
		Mirrored: s.Mirrored,
		Padded:   s.Padded,
	}
}

// nonNil Пустой список отдаётся как [], а не null
func nonNil(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}
