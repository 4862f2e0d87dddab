package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/modaudit/internal/model"
	"github.com/gyeh/modaudit/internal/normalize"
	embedsql "github.com/gyeh/modaudit/internal/sql"
)

// SaveReport persists one audit run: the run row (including the serialized
// report as jsonb) and its leak rows, atomically. bundleSHA ties the run to
// the exact input file it was computed from.
func SaveReport(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID uuid.UUID, report *model.AuditReport, valuationDate model.Date, bundleSHA string) error {
	serialized, err := report.Serialize()
	if err != nil {
		return err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, embedsql.InsertRun,
		runID,
		report.Policy.PolicyNumber,
		report.Policy.State,
		valuationDate.Time,
		bundleSHA,
		report.CurrentMod.ExperienceMod,
		report.CorrectedMod.ExperienceMod,
		normalize.RoundTo(report.ModReduction, 3),
		normalize.RoundTo(report.PremiumSavings, 2),
		len(report.Leaks),
		normalize.RoundTo(report.TotalLeakImpact, 2),
		normalize.RoundTo(report.ExpectedRecovery, 2),
		serialized,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"audit", "leaks"},
		leakColumns(),
		NewLeakSource(runID, report.Leaks),
	)
	if err != nil {
		return fmt.Errorf("copy leaks: %w", err)
	}
	if copied != int64(len(report.Leaks)) {
		return fmt.Errorf("copy leaks: wrote %d of %d rows", copied, len(report.Leaks))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	log.Info().
		Str("run_id", runID.String()).
		Str("policy", report.Policy.PolicyNumber).
		Int64("leaks", copied).
		Msg("audit run stored")

	return nil
}

// LoadReportJSON fetches the serialized report for a stored run.
func LoadReportJSON(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID) ([]byte, error) {
	var report []byte
	if err := pool.QueryRow(ctx, embedsql.SelectReport, runID).Scan(&report); err != nil {
		return nil, fmt.Errorf("load report %s: %w", runID, err)
	}
	return report, nil
}
