package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/modaudit/internal/engine"
	"github.com/gyeh/modaudit/internal/exitcode"
	"github.com/gyeh/modaudit/internal/logging"
	"github.com/gyeh/modaudit/internal/model"
	"github.com/gyeh/modaudit/internal/rating"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run: validate the input and preview what an audit would find",
	Long: `Loads and validates the bundle (plus the optional loss run), checks
state support and rating-plan eligibility, and reports which leak rules would
fire. Nothing is computed into a report and nothing is written.`,
	RunE: runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.BundlePath, "bundle", "", "Path to audit bundle JSON (required)")
	f.StringVar(&cfg.LossRunPath, "loss-run", "", "Parquet loss run; replaces the bundle's claim list")
	f.StringVar(&cfg.ValuationDate, "valuation-date", "", "Valuation date YYYY-MM-DD (overrides bundle)")
	f.StringVar(&cfg.ClassTablePath, "class-table", "", "Class-code table YAML to check exposures against")
	f.Float64Var(&cfg.ExecOfficerCap, "exec-officer-cap", 0, "Executive officer payroll cap (0 = plan default)")
	_ = planCmd.MarkFlagRequired("bundle")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(exitcode.UsageError)
	}

	b, err := loadInput(&cfg)
	if err != nil {
		log.Error().Err(err).Msg("input rejected")
		os.Exit(exitcode.ValidationError)
	}

	fmt.Println("=== modaudit plan ===")
	fmt.Printf("Bundle:          %s\n", cfg.BundlePath)
	fmt.Printf("Policy:          %s (%s)\n", b.Policy.PolicyNumber, b.Policy.State)
	fmt.Printf("Valuation date:  %s\n", b.ValuationDate)

	auth, err := rating.ForState(b.Policy.State)
	if err != nil {
		fmt.Printf("State support:   NOT SUPPORTED (%s)\n", err)
		os.Exit(exitcode.ValidationError)
	}
	fmt.Printf("Rating bureau:   %s (%s)\n", auth.Bureau, auth.StateName)
	if !auth.NCCI {
		fmt.Println("State support:   bureau formula not implemented; audit would fail")
		os.Exit(exitcode.ValidationError)
	}
	fmt.Printf("Split point:     $%.0f\n", auth.SplitPoint)
	fmt.Printf("SAL per claim:   $%.0f (multi-claim $%.0f)\n", auth.SALPerClaim, auth.SALMultipleClaim)
	if auth.ERAEligible {
		fmt.Printf("ERA:             eligible, med-only ratable at %.0f%%\n", auth.ERADiscount*100)
	} else {
		fmt.Println("ERA:             not eligible")
	}

	var payroll, expected float64
	var otEarnings, execPayroll, severance, travel, subcontractor float64
	for i := range b.Exposures {
		e := &b.Exposures[i]
		payroll += e.Payroll
		expected += e.ExpectedLosses()
		otEarnings += e.OvertimeEarnings
		execPayroll += e.ExecutiveOfficerPayroll
		severance += e.SeverancePay
		travel += e.TravelReimbursements
		subcontractor += e.SubcontractorPayroll
	}
	fmt.Printf("Exposures:       %d class codes, $%.2f payroll, E = $%.2f\n",
		len(b.Exposures), payroll, expected)
	if expected >= auth.MinExpectedLosses {
		fmt.Printf("Eligibility:     experience-rated (E >= $%.0f threshold)\n", auth.MinExpectedLosses)
	} else {
		fmt.Printf("Eligibility:     BELOW threshold ($%.2f < $%.0f); mod should not apply\n",
			expected, auth.MinExpectedLosses)
	}
	fmt.Printf("Payroll detail:  OT $%.2f, exec $%.2f, severance $%.2f, travel $%.2f, subcontractor $%.2f\n",
		otEarnings, execPayroll, severance, travel, subcontractor)

	var medOnly, open, denied int
	injuryMix := make(map[string]int)
	for i := range b.Claims {
		switch {
		case b.Claims[i].IsDenied():
			denied++
		case b.Claims[i].IsMedicalOnly():
			medOnly++
		}
		if b.Claims[i].IsOpen() {
			open++
		}
		injuryMix[b.Claims[i].InjuryCode]++
	}
	fmt.Printf("Claims:          %d total (%d med-only, %d open, %d denied)\n",
		len(b.Claims), medOnly, open, denied)
	for _, code := range []string{model.InjuryFatal, model.InjuryPermanentTotal, model.InjuryPermanentPartial,
		model.InjuryTemporaryTotal, model.InjuryMinor, model.InjuryMedicalOnly} {
		if n := injuryMix[code]; n > 0 {
			fmt.Printf("  %-28s %d\n", model.InjuryCodeLabels[code], n)
		}
	}

	execCap := cfg.ExecOfficerCap
	if execCap <= 0 {
		execCap = engine.DefaultExecOfficerCap
	}
	_, payrollLeaks := engine.AdjustPayroll(b.Exposures, execCap)
	_, gateLeaks := engine.ProcessClaims(b.Claims, auth)
	claimLeaks := engine.DetectClaimLeaks(b.Claims, b.ValuationDate)

	counts := make(map[model.LeakKind]int)
	for _, l := range payrollLeaks {
		counts[l.Kind]++
	}
	for _, l := range gateLeaks {
		counts[l.Kind]++
	}
	for _, l := range claimLeaks {
		counts[l.Kind]++
	}
	if !b.Policy.ModAppliedCorrectly() {
		counts[model.LeakARDMismatch]++
	}

	total := 0
	fmt.Println("Projected leak rules:")
	for _, info := range model.AllLeakKinds {
		if n := counts[info.Kind]; n > 0 {
			fmt.Printf("  %-28s %d\n", info.Kind, n)
			total += n
		}
	}
	if total == 0 {
		fmt.Println("  (none)")
	}
	fmt.Printf("Projected leaks: %d\n", total)

	if cfg.ClassTablePath != "" {
		if err := checkClassTable(b.Exposures); err != nil {
			log.Error().Err(err).Msg("class table check failed")
			os.Exit(exitcode.ValidationError)
		}
	}

	fmt.Println("Validation: OK")
	return nil
}

// checkClassTable verifies every exposure's class code against the reference
// table and flags clerical-heavy payroll, a common misclassification tell.
func checkClassTable(exposures []model.ClassCodeExposure) error {
	table, err := rating.LoadClassTable(cfg.ClassTablePath)
	if err != nil {
		return err
	}
	fmt.Printf("Class table:     %s (%d codes)\n", table.Vintage, table.Len())

	var payroll, clerical float64
	for i := range exposures {
		e := &exposures[i]
		info, ok := table.Lookup(e.ClassCode)
		if !ok {
			return fmt.Errorf("class code %s not in table vintage %s", e.ClassCode, table.Vintage)
		}
		payroll += e.Payroll
		if info.IsClerical() {
			clerical += e.Payroll
		}
		if info.IsGoverning() {
			fmt.Printf("  governing class %s (%s)\n", info.Code, info.Description)
		}
	}
	if payroll > 0 {
		fmt.Printf("  clerical share: %.1f%% of payroll\n", clerical/payroll*100)
	}
	return nil
}
