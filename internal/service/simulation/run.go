package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"spin2win/internal/engine/partition"
	"spin2win/internal/engine/session"
	"spin2win/internal/model"
	"spin2win/internal/repository"
	"spin2win/internal/service"
)

// Run Прогон по списку спинов. Повторный запрос с той же конфигурацией и спинами
// возвращает уже сохранённый отчёт.
func (s *serv) Run(ctx context.Context, req model.SimulationRequest) (*model.Report, error) {
	cfg, preset, err := service.ResolveConfig(s.presets, req.Preset, req.Config)
	if err != nil {
		return nil, err
	}

	source, spins, err := resolveSpins(req)
	if err != nil {
		return nil, err
	}

	fp, err := Fingerprint(cfg, spins)
	if err != nil {
		return nil, err
	}

	existing, err := s.byFingerprint(ctx, fp)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Debug("simulation report reused", zap.String("report_id", existing.ID))
		return existing, nil
	}

	rep, err := Replay(cfg, spins)
	if err != nil {
		return nil, err
	}
	rep.Fingerprint = fp
	rep.Preset = preset
	rep.Source = source

	// Отчёт и раунды одной транзакцией
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.CreateReport(txCtx, rep); err != nil {
			return err
		}
		return s.repo.CreateRounds(txCtx, rep.ID, rep.Rounds)
	})
	if errors.Is(err, repository.ErrReportExists) {
		// Тот же прогон успел сохранить параллельный запрос
		existing, err = s.byFingerprint(ctx, fp)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, repository.ErrReportNotFound
		}
		return existing, nil
	}
	if err != nil {
		s.log.Error("save simulation report", zap.String("fingerprint", fp), zap.Error(err))
		return nil, err
	}

	s.log.Info("simulation stored",
		zap.String("report_id", rep.ID),
		zap.String("source", string(source)),
		zap.Int("spins", rep.TotalSpins),
		zap.Int("net_profit", rep.NetProfit),
	)

	return rep, nil
}

// Get Отчёт по ID, раунды по запросу
func (s *serv) Get(ctx context.Context, id string, withRounds bool) (*model.Report, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrReportNotFound
	}

	rep, err := s.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	if withRounds {
		if rep.Rounds, err = s.repo.GetRounds(ctx, id); err != nil {
			return nil, err
		}
	}

	return rep, nil
}

// byFingerprint Сохранённый отчёт с раундами или nil
func (s *serv) byFingerprint(ctx context.Context, fp string) (*model.Report, error) {
	rep, err := s.repo.GetReportByFingerprint(ctx, fp)
	if errors.Is(err, repository.ErrReportNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if rep.Rounds, err = s.repo.GetRounds(ctx, rep.ID); err != nil {
		return nil, err
	}
	return rep, nil
}

func resolveSpins(req model.SimulationRequest) (model.SpinSource, []int, error) {
	source := req.Source
	if source == "" {
		source = model.SpinSourceList
		if len(req.Spins) == 0 {
			source = model.SpinSourceLive
		}
	}

	switch source {
	case model.SpinSourceList:
		if len(req.Spins) == 0 {
			return "", nil, fmt.Errorf("%w: empty spin list", service.ErrInvalidRequest)
		}
		if len(req.Spins) > MaxSpins {
			return "", nil, fmt.Errorf("%w: more than %d spins", service.ErrInvalidRequest, MaxSpins)
		}
		// До отпечатка: в нём номер занимает один байт
		for i, n := range req.Spins {
			if !partition.ValidNumber(n) {
				return "", nil, fmt.Errorf("spin #%d: %w: %d", i, session.ErrInvalidSpin, n)
			}
		}
		return source, req.Spins, nil
	case model.SpinSourceLive:
		return source, LiveSpins(), nil
	case model.SpinSourceRandom:
		if req.Count <= 0 || req.Count > MaxSpins {
			return "", nil, fmt.Errorf("%w: count must be in 1..%d", service.ErrInvalidRequest, MaxSpins)
		}
		return source, RandomSpins(req.Count, req.Seed), nil
	default:
		return "", nil, fmt.Errorf("%w: unknown spin source %q", service.ErrInvalidRequest, source)
	}
}
