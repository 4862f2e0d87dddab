package store_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/modaudit/internal/logging"
	"github.com/gyeh/modaudit/internal/model"
	"github.com/gyeh/modaudit/internal/store"
)

const (
	testPort     = 15433
	testDB       = "modaudittest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

func TestMain(m *testing.M) {
	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupDB creates a connection pool and applies migrations from a clean slate.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS audit CASCADE"); err != nil {
		t.Fatalf("drop schema: %v", err)
	}

	log := logging.Setup("text")
	if err := store.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}

func sampleReport() *model.AuditReport {
	return &model.AuditReport{
		Policy: model.PolicyInfo{
			PolicyNumber:          "WC-2025-0001",
			State:                 "GA",
			EffectiveDate:         model.NewDate(2025, time.January, 1),
			ExpirationDate:        model.NewDate(2026, time.January, 1),
			AnniversaryRatingDate: model.NewDate(2025, time.January, 1),
			TotalManualPremium:    250_000,
			CurrentMod:            1.25,
		},
		CurrentMod:   model.ModResult{State: "GA", ExperienceMod: 1.252},
		CorrectedMod: model.ModResult{State: "GA", ExperienceMod: 1.118},
		Leaks: []model.DetectedLeak{
			{
				Kind:                model.LeakERAMedicalOnly,
				Description:         "Med-only claim WC-1 missing 70% discount",
				AffectedItems:       []string{"WC-1"},
				CurrentValue:        1_000,
				CorrectedValue:      300,
				DollarImpact:        700,
				RecoveryProbability: 0.95,
				Evidence:            "NCCI Experience Rating Plan Manual Rule 2-E-1",
			},
			{
				Kind:                model.LeakDuplicateClaims,
				Description:         "Claims WC-7 and WC-8 are duplicates",
				AffectedItems:       []string{"WC-7", "WC-8"},
				CurrentValue:        24_000,
				CorrectedValue:      12_000,
				DollarImpact:        12_000,
				RecoveryProbability: 0.90,
				Evidence:            "Same accident date, claimant, and incurred total",
			},
		},
		TotalLeakImpact:  12_700,
		ExpectedRecovery: 11_465,
		ModReduction:     0.134,
		PremiumSavings:   33_500,
	}
}

func TestSaveReport_Roundtrip(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text")

	report := sampleReport()
	runID := uuid.New()
	valuation := model.NewDate(2025, time.June, 1)

	if err := store.SaveReport(ctx, pool, log, runID, report, valuation, "deadbeef"); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	stored, err := store.LoadReportJSON(ctx, pool, runID)
	if err != nil {
		t.Fatalf("LoadReportJSON: %v", err)
	}
	want, err := report.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(stored, want) {
		t.Error("stored report differs from serialized report")
	}

	var policy, state, sha string
	var leakCount int
	err = pool.QueryRow(ctx,
		"SELECT policy_number, state, bundle_sha256, total_leaks FROM audit.runs WHERE run_id = $1",
		runID).Scan(&policy, &state, &sha, &leakCount)
	if err != nil {
		t.Fatalf("query run: %v", err)
	}
	if policy != "WC-2025-0001" || state != "GA" || sha != "deadbeef" || leakCount != 2 {
		t.Errorf("run row: %s %s %s %d", policy, state, sha, leakCount)
	}
}

func TestSaveReport_LeakRows(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text")

	report := sampleReport()
	runID := uuid.New()

	if err := store.SaveReport(ctx, pool, log, runID, report, model.NewDate(2025, time.June, 1), "cafe"); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	rows, err := pool.Query(ctx,
		"SELECT seq, kind, affected_items, dollar_impact FROM audit.leaks WHERE run_id = $1 ORDER BY seq",
		runID)
	if err != nil {
		t.Fatalf("query leaks: %v", err)
	}
	defer rows.Close()

	var got []struct {
		seq    int
		kind   string
		items  []string
		impact float64
	}
	for rows.Next() {
		var r struct {
			seq    int
			kind   string
			items  []string
			impact float64
		}
		if err := rows.Scan(&r.seq, &r.kind, &r.items, &r.impact); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, r)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 leak rows, got %d", len(got))
	}
	if got[0].seq != 0 || got[0].kind != "era_medical_only" || got[0].impact != 700 {
		t.Errorf("first leak row: %+v", got[0])
	}
	if got[1].kind != "duplicate_claims" || len(got[1].items) != 2 {
		t.Errorf("second leak row: %+v", got[1])
	}
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text")

	// Second run must be a no-op, not an error.
	if err := store.ApplyMigrations(ctx, pool, log); err != nil {
		t.Fatalf("second ApplyMigrations: %v", err)
	}
}

func TestLoadReportJSON_Missing(t *testing.T) {
	pool := setupDB(t)

	if _, err := store.LoadReportJSON(context.Background(), pool, uuid.New()); err == nil {
		t.Fatal("expected error for unknown run id")
	}
}
