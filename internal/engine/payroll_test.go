package engine

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gyeh/modaudit/internal/model"
)

func TestAdjustPayroll_Overtime(t *testing.T) {
	exposures := []model.ClassCodeExposure{{
		ClassCode:        "3632",
		Payroll:          500_000,
		OvertimeEarnings: 9_000,
		OvertimeRate:     1.5,
	}}

	adjusted, leaks := AdjustPayroll(exposures, DefaultExecOfficerCap)

	// At 1.5x, one third of OT earnings is the premium portion.
	if math.Abs(adjusted[0].Payroll-497_000) > 1e-6 {
		t.Errorf("payroll: got %.2f want 497000", adjusted[0].Payroll)
	}
	if len(leaks) != 1 || leaks[0].Kind != model.LeakOvertimePremium {
		t.Fatalf("expected one overtime leak, got %v", leaks)
	}
	if math.Abs(leaks[0].DollarImpact-3_000) > 1e-6 {
		t.Errorf("impact: got %.2f want 3000", leaks[0].DollarImpact)
	}
	if leaks[0].RecoveryProbability != 0.90 {
		t.Errorf("probability: got %.2f", leaks[0].RecoveryProbability)
	}
}

func TestOvertimeExclusion_Rates(t *testing.T) {
	cases := []struct {
		rate, earnings, want float64
	}{
		{1.5, 9_000, 3_000},
		{2.0, 10_000, 5_000},
		{2.5, 10_000, 6_000},
		{3.0, 9_000, 6_000}, // generic (rate-1)/rate
		{1.0, 9_000, 0},
		{0, 9_000, 0},
	}
	for _, tc := range cases {
		if got := overtimeExclusion(tc.earnings, tc.rate); math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("rate %.1f: got %.2f want %.2f", tc.rate, got, tc.want)
		}
	}
}

func TestAdjustPayroll_ExecOfficerCap(t *testing.T) {
	exposures := []model.ClassCodeExposure{{
		ClassCode:               "8810",
		Payroll:                 300_000,
		ExecutiveOfficerPayroll: 150_000,
	}}

	adjusted, leaks := AdjustPayroll(exposures, 100_000)

	if adjusted[0].Payroll != 250_000 {
		t.Errorf("payroll: got %.2f want 250000", adjusted[0].Payroll)
	}
	if len(leaks) != 1 || leaks[0].Kind != model.LeakExecOfficerCap {
		t.Fatalf("expected one exec cap leak, got %v", leaks)
	}
	if leaks[0].DollarImpact != 50_000 || leaks[0].CorrectedValue != 100_000 {
		t.Errorf("leak values: impact %.2f corrected %.2f", leaks[0].DollarImpact, leaks[0].CorrectedValue)
	}
}

func TestAdjustPayroll_AllFiveRules(t *testing.T) {
	exposures := []model.ClassCodeExposure{{
		ClassCode:               "5437",
		Payroll:                 1_000_000,
		OvertimeEarnings:        9_000,
		OvertimeRate:            1.5,
		ExecutiveOfficerPayroll: 150_000,
		SeverancePay:            20_000,
		TravelReimbursements:    5_000,
		SubcontractorPayroll:    80_000,
	}}

	adjusted, leaks := AdjustPayroll(exposures, 100_000)

	if len(leaks) != 5 {
		t.Fatalf("expected 5 leaks, got %d", len(leaks))
	}
	want := 1_000_000.0 - 3_000 - 50_000 - 20_000 - 5_000 - 80_000
	if math.Abs(adjusted[0].Payroll-want) > 1e-6 {
		t.Errorf("payroll: got %.2f want %.2f", adjusted[0].Payroll, want)
	}

	order := []model.LeakKind{
		model.LeakOvertimePremium,
		model.LeakExecOfficerCap,
		model.LeakSeverancePay,
		model.LeakTravelExpense,
		model.LeakSubcontractorDupe,
	}
	for i, kind := range order {
		if leaks[i].Kind != kind {
			t.Errorf("leak %d: got %s want %s", i, leaks[i].Kind, kind)
		}
	}
}

func TestAdjustPayroll_CleanExposureUnchanged(t *testing.T) {
	exposures := []model.ClassCodeExposure{{
		ClassCode: "8810",
		Payroll:   200_000,
		ELR:       0.09,
		DRatio:    0.31,
	}}

	adjusted, leaks := AdjustPayroll(exposures, DefaultExecOfficerCap)

	if len(leaks) != 0 {
		t.Fatalf("expected no leaks, got %d", len(leaks))
	}
	if diff := cmp.Diff(exposures[0], adjusted[0]); diff != "" {
		t.Errorf("clean exposure changed (-want +got):\n%s", diff)
	}
}
