package simulation_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"spin2win/internal/model"
	"spin2win/internal/repository"
	repoModel "spin2win/internal/repository/simulation_repo/model"
)

const (
	reportsTable = "simulation_reports"
	roundsTable  = "simulation_rounds"

	colID              = "id"
	colFingerprint     = "fingerprint"
	colPreset          = "preset"
	colConfig          = "config"
	colSource          = "source"
	colTotalSpins      = "total_spins"
	colSpinsEvaluated  = "spins_evaluated"
	colHits            = "hits"
	colMisses          = "misses"
	colSkipped         = "skipped"
	colResets          = "resets"
	colStartingBalance = "starting_balance"
	colFinalBalance    = "final_balance"
	colLowestBalance   = "lowest_balance"
	colHighestBalance  = "highest_balance"
	colNetProfit       = "net_profit"
	colWagered         = "wagered"
	colHitRate         = "hit_rate"
	colROI             = "roi"
	colCreatedAt       = "created_at"

	colReportID = "report_id"
	colIdx      = "idx"
	colSpin     = "spin"
	colSeed     = "seed"
	colHit      = "hit"
	colStake    = "stake"
	colNet      = "net"
	colBalance  = "balance"
	colReset    = "reset"

	uniqueViolation = "23505"

	// roundsChunk Сколько строк раундов вставлять одним запросом
	roundsChunk = 1000
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSimulationRepository(dbc *pgxpool.Pool) repository.SimulationRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateReport - сохраняет отчёт. ID и created_at возвращаются из БД
func (r *repo) CreateReport(ctx context.Context, report *model.Report) error {
	row, err := toRepoReport(report)
	if err != nil {
		return err
	}

	// Формируем запрос
	query := psql.Insert(reportsTable).
		Columns(
			colFingerprint, colPreset, colConfig, colSource, colTotalSpins, colSpinsEvaluated,
			colHits, colMisses, colSkipped, colResets, colStartingBalance, colFinalBalance,
			colLowestBalance, colHighestBalance, colNetProfit, colWagered, colHitRate, colROI,
		).
		Values(
			row.Fingerprint, row.Preset, row.Config, row.Source, row.TotalSpins, row.SpinsEvaluated,
			row.Hits, row.Misses, row.Skipped, row.Resets, row.StartingBalance, row.FinalBalance,
			row.LowestBalance, row.HighestBalance, row.NetProfit, row.Wagered,
			row.HitRate.String(), row.ROI.String(),
		).
		Suffix("RETURNING " + colID + "::text, " + colCreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)
	err = tr.QueryRow(ctx, sqlStr, args...).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrReportExists
		}
		return fmt.Errorf("insert report: %w", err)
	}

	return nil
}

// CreateRounds - сохраняет раунды отчёта пачками
func (r *repo) CreateRounds(ctx context.Context, reportID string, rounds []model.Round) error {
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)

	for start := 0; start < len(rounds); start += roundsChunk {
		end := min(start+roundsChunk, len(rounds))

		query := psql.Insert(roundsTable).
			Columns(colReportID, colIdx, colSpin, colSeed, colHit, colStake, colNet, colBalance, colReset)
		for _, rd := range rounds[start:end] {
			query = query.Values(reportID, rd.Index, rd.Spin, rd.Seed, rd.Hit, int64(rd.Stake), int64(rd.Net), int64(rd.Balance), rd.Reset)
		}

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}

		if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
			return fmt.Errorf("insert rounds: %w", err)
		}
	}

	return nil
}

// GetReport - отчёт по ID без раундов
func (r *repo) GetReport(ctx context.Context, id string) (*model.Report, error) {
	return r.getReport(ctx, sq.Eq{colID: id})
}

// GetReportByFingerprint - отчёт по отпечатку конфигурации и спинов
func (r *repo) GetReportByFingerprint(ctx context.Context, fingerprint string) (*model.Report, error) {
	return r.getReport(ctx, sq.Eq{colFingerprint: fingerprint})
}

func (r *repo) getReport(ctx context.Context, where sq.Eq) (*model.Report, error) {
	// Формируем запрос
	query := psql.Select(
		colID+"::text", colFingerprint, colPreset, colConfig, colSource, colTotalSpins, colSpinsEvaluated,
		colHits, colMisses, colSkipped, colResets, colStartingBalance, colFinalBalance,
		colLowestBalance, colHighestBalance, colNetProfit, colWagered,
		colHitRate+"::text", colROI+"::text", colCreatedAt,
	).
		From(reportsTable).
		Where(where)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		row          repoModel.Report
		hitRate, roi string
	)
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)
	err = tr.QueryRow(ctx, sqlStr, args...).Scan(
		&row.ID, &row.Fingerprint, &row.Preset, &row.Config, &row.Source, &row.TotalSpins, &row.SpinsEvaluated,
		&row.Hits, &row.Misses, &row.Skipped, &row.Resets, &row.StartingBalance, &row.FinalBalance,
		&row.LowestBalance, &row.HighestBalance, &row.NetProfit, &row.Wagered,
		&hitRate, &roi, &row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrReportNotFound
		}
		return nil, err
	}

	if row.HitRate, err = decimal.NewFromString(hitRate); err != nil {
		return nil, fmt.Errorf("parse hit rate: %w", err)
	}
	if row.ROI, err = decimal.NewFromString(roi); err != nil {
		return nil, fmt.Errorf("parse roi: %w", err)
	}

	return fromRepoReport(row)
}

// GetRounds - раунды отчёта по порядку
func (r *repo) GetRounds(ctx context.Context, reportID string) ([]model.Round, error) {
	query := psql.Select(colIdx, colSpin, colSeed, colHit, colStake, colNet, colBalance, colReset).
		From(roundsTable).
		Where(sq.Eq{colReportID: reportID}).
		OrderBy(colIdx)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)
	rows, err := tr.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Round
	for rows.Next() {
		var rd repoModel.Round
		if err := rows.Scan(&rd.Index, &rd.Spin, &rd.Seed, &rd.Hit, &rd.Stake, &rd.Net, &rd.Balance, &rd.Reset); err != nil {
			return nil, err
		}
		out = append(out, fromRepoRound(rd))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
