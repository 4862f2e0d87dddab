package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gyeh/modaudit/internal/bundle"
	"github.com/gyeh/modaudit/internal/config"
	"github.com/gyeh/modaudit/internal/engine"
	"github.com/gyeh/modaudit/internal/exitcode"
	"github.com/gyeh/modaudit/internal/logging"
	"github.com/gyeh/modaudit/internal/lossrun"
	"github.com/gyeh/modaudit/internal/model"
	"github.com/gyeh/modaudit/internal/normalize"
	"github.com/gyeh/modaudit/internal/rating"
	"github.com/gyeh/modaudit/internal/store"
)

var ruleConfigPath string

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run a full audit and emit the report",
	Long: `Runs both mod passes (current and corrected) over a policy bundle,
scans for premium leaks, and writes the report JSON to stdout or --output.
With --store the report is also persisted to Postgres.`,
	RunE: runAudit,
}

func init() {
	f := auditCmd.Flags()
	f.StringVar(&cfg.BundlePath, "bundle", "", "Path to audit bundle JSON (required)")
	f.StringVar(&cfg.LossRunPath, "loss-run", "", "Parquet loss run; replaces the bundle's claim list")
	f.StringVar(&cfg.ValuationDate, "valuation-date", "", "Valuation date YYYY-MM-DD (overrides bundle)")
	f.StringVar(&cfg.OutputPath, "output", "", "Write the report to this file instead of stdout")
	f.StringVar(&ruleConfigPath, "config", "", "YAML rule-set file (leak kinds, exec officer cap)")
	f.Float64Var(&cfg.ExecOfficerCap, "exec-officer-cap", 0, "Executive officer payroll cap (0 = plan default)")
	f.BoolVar(&cfg.Store, "store", false, "Persist the run to Postgres")
	_ = auditCmd.MarkFlagRequired("bundle")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if ruleConfigPath != "" {
		if err := cfg.LoadFromFile(ruleConfigPath); err != nil {
			log.Error().Err(err).Msg("invalid rule-set config")
			os.Exit(exitcode.UsageError)
		}
	}
	validate := cfg.Validate
	if cfg.Store {
		validate = cfg.ValidateWithDSN
	}
	if err := validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(exitcode.UsageError)
	}

	b, err := loadInput(&cfg)
	if err != nil {
		log.Error().Err(err).Msg("input rejected")
		os.Exit(exitcode.ValidationError)
	}

	report, err := engine.Run(log, engine.Input{
		Policy:        b.Policy,
		Exposures:     b.Exposures,
		Claims:        b.Claims,
		ValuationDate: b.ValuationDate,
	}, engine.Options{
		ExecOfficerCap: cfg.ExecOfficerCap,
		EnabledKinds:   cfg.EnabledKinds(),
	})
	if err != nil {
		log.Error().Err(err).Msg("audit failed")
		if errors.Is(err, rating.ErrStateNotSupported) || errors.Is(err, rating.ErrBureauNotImplemented) {
			os.Exit(exitcode.ValidationError)
		}
		os.Exit(exitcode.AuditError)
	}

	serialized, err := report.Serialize()
	if err != nil {
		log.Error().Err(err).Msg("report serialization failed")
		os.Exit(exitcode.AuditError)
	}
	if cfg.OutputPath != "" {
		if err := os.WriteFile(cfg.OutputPath, serialized, 0o644); err != nil {
			log.Error().Err(err).Msg("report write failed")
			os.Exit(exitcode.AuditError)
		}
		log.Info().Str("path", cfg.OutputPath).Msg("report written")
	} else {
		fmt.Println(string(serialized))
	}

	if cfg.Store {
		bundleSHA, err := normalize.FileHash(cfg.BundlePath)
		if err != nil {
			log.Error().Err(err).Msg("bundle fingerprint failed")
			os.Exit(exitcode.StoreError)
		}
		pool, err := store.NewPool(ctx, cfg.DSN)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed")
			os.Exit(exitcode.DBConnError)
		}
		defer pool.Close()

		runID := uuid.New()
		if err := store.SaveReport(ctx, pool, log, runID, report, b.ValuationDate, bundleSHA); err != nil {
			log.Error().Err(err).Msg("store failed")
			os.Exit(exitcode.StoreError)
		}
	}

	return nil
}

// loadInput assembles the engine input from the bundle plus the optional
// loss-run and valuation-date overrides, then validates the result.
func loadInput(cfg *config.Config) (*bundle.Bundle, error) {
	b, err := bundle.Load(cfg.BundlePath)
	if err != nil {
		return nil, err
	}
	if cfg.LossRunPath != "" {
		claims, err := lossrun.ReadClaims(cfg.LossRunPath)
		if err != nil {
			return nil, err
		}
		b.Claims = claims
	}
	if cfg.ValuationDate != "" {
		d, err := model.ParseDate(cfg.ValuationDate)
		if err != nil {
			return nil, fmt.Errorf("invalid --valuation-date: %w", err)
		}
		b.ValuationDate = d
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}
