package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gyeh/modaudit/internal/model"
	"github.com/gyeh/modaudit/internal/rating"
)

// AuditError wraps an error with the audit phase where it occurred.
type AuditError struct {
	Phase string
	Err   error
}

func (e *AuditError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *AuditError) Unwrap() error {
	return e.Err
}

// Input is one policy's complete audit input, pre-validated by the
// normalization layer. The valuation date is supplied by the caller; the
// engine never reads the clock.
type Input struct {
	Policy        model.PolicyInfo
	Exposures     []model.ClassCodeExposure
	Claims        []model.Claim
	ValuationDate model.Date
}

// Options tunes a run. The zero value means the default executive-officer
// cap and every leak kind enabled.
type Options struct {
	ExecOfficerCap float64
	// EnabledKinds filters which leak kinds are carried into the report.
	// nil enables all. Filtering affects reporting only, never the mod math.
	EnabledKinds map[model.LeakKind]bool
}

// Run executes the full audit for one policy:
//
//	current pass:   raw claims → gates → mod (reproduces the carrier's math)
//	corrected pass: adjusted payroll + gates, denied claims removed → mod
//
// plus the independent claim-leak scan, leak merge, and recovery aggregation.
// The computation is pure and synchronous; identical inputs produce
// byte-identical serialized reports.
func Run(log zerolog.Logger, in Input, opts Options) (*model.AuditReport, error) {
	auth, err := rating.ForState(in.Policy.State)
	if err != nil {
		return nil, &AuditError{Phase: "rating", Err: err}
	}

	execCap := opts.ExecOfficerCap
	if execCap <= 0 {
		execCap = DefaultExecOfficerCap
	}

	log.Info().
		Str("policy", in.Policy.PolicyNumber).
		Str("state", auth.StateCode).
		Int("claims", len(in.Claims)).
		Int("exposures", len(in.Exposures)).
		Msg("starting audit")

	// Current pass: raw data as-is, to reproduce what the carrier computed.
	// Gate leaks from this pass are identical to the corrected pass's (same
	// raw claims through the same gates), so only the latter set is kept.
	currentProcessed, _ := ProcessClaims(in.Claims, auth)
	currentMod, err := CalculateMod(in.Exposures, currentProcessed, auth)
	if err != nil {
		return nil, &AuditError{Phase: "current", Err: err}
	}

	// Correction pass.
	adjustedExposures, payrollLeaks := AdjustPayroll(in.Exposures, execCap)
	correctedProcessed, gateLeaks := ProcessClaims(in.Claims, auth)
	claimLeaks := DetectClaimLeaks(in.Claims, in.ValuationDate)

	// Rule 4-C: denied claims come out of the corrected mod entirely.
	// TODO: decide whether duplicate claims should be excluded here as
	// well; today they are report-only.
	final := correctedProcessed[:0:0]
	for _, pc := range correctedProcessed {
		if !pc.Claim.IsDenied() {
			final = append(final, pc)
		}
	}

	correctedMod, err := CalculateMod(adjustedExposures, final, auth)
	if err != nil {
		return nil, &AuditError{Phase: "corrected", Err: err}
	}

	// Merge in insertion order; no deduplication.
	leaks := make([]model.DetectedLeak, 0, len(payrollLeaks)+len(gateLeaks)+len(claimLeaks)+1)
	leaks = append(leaks, payrollLeaks...)
	leaks = append(leaks, gateLeaks...)
	leaks = append(leaks, claimLeaks...)

	if !in.Policy.ModAppliedCorrectly() {
		leaks = append(leaks, model.DetectedLeak{
			Kind: model.LeakARDMismatch,
			Description: fmt.Sprintf("Anniversary rating date %s differs from policy effective date %s",
				in.Policy.AnniversaryRatingDate, in.Policy.EffectiveDate),
			AffectedItems:       []string{in.Policy.PolicyNumber},
			RecoveryProbability: 0.50,
			Evidence:            "NCCI Experience Rating Plan Manual Rule 4-B - ARD governs mod application",
		})
	}

	if opts.EnabledKinds != nil {
		kept := leaks[:0:0]
		for _, l := range leaks {
			if opts.EnabledKinds[l.Kind] {
				kept = append(kept, l)
			}
		}
		leaks = kept
	}

	var totalImpact, expectedRecovery float64
	for i := range leaks {
		totalImpact += leaks[i].DollarImpact
		expectedRecovery += leaks[i].ExpectedRecovery()
	}

	modReduction := currentMod.ExperienceMod - correctedMod.ExperienceMod
	report := &model.AuditReport{
		Policy:           in.Policy,
		CurrentMod:       currentMod,
		CorrectedMod:     correctedMod,
		Leaks:            leaks,
		TotalLeakImpact:  totalImpact,
		ExpectedRecovery: expectedRecovery,
		ModReduction:     modReduction,
		PremiumSavings:   modReduction * in.Policy.TotalManualPremium,
	}

	log.Info().
		Float64("current_mod", currentMod.ExperienceMod).
		Float64("corrected_mod", correctedMod.ExperienceMod).
		Int("leaks", len(leaks)).
		Float64("expected_recovery", expectedRecovery).
		Msg("audit complete")

	return report, nil
}
