package engine

import (
	"fmt"

	"github.com/gyeh/modaudit/internal/model"
)

// DefaultExecOfficerCap is the fallback executive-officer payroll cap when
// the rule-set config does not override it with a state-specific value.
const DefaultExecOfficerCap = 100_000.0

// overtimeExclusion returns the excludable premium portion of overtime
// earnings: the pay above straight time, i.e. (rate−1)/rate of the total.
func overtimeExclusion(earnings, rate float64) float64 {
	switch rate {
	case 1.5:
		return earnings * (1.0 / 3.0)
	case 2.0:
		return earnings * 0.5
	case 2.5:
		return earnings * 0.6
	default:
		if rate <= 1 {
			return 0
		}
		return earnings * ((rate - 1) / rate)
	}
}

// AdjustPayroll evaluates the five payroll-leak rules per exposure and
// returns adjusted exposures with the excluded components removed from
// payroll, plus one leak per triggered rule. Exposures with no triggered
// rules are copied unchanged. Claims play no part here.
func AdjustPayroll(exposures []model.ClassCodeExposure, execOfficerCap float64) ([]model.ClassCodeExposure, []model.DetectedLeak) {
	adjusted := make([]model.ClassCodeExposure, 0, len(exposures))
	var leaks []model.DetectedLeak

	for _, exp := range exposures {
		var corrections float64

		if exp.OvertimeEarnings > 0 {
			excl := overtimeExclusion(exp.OvertimeEarnings, exp.OvertimeRate)
			corrections += excl
			leaks = append(leaks, model.DetectedLeak{
				Kind: model.LeakOvertimePremium,
				Description: fmt.Sprintf("Class %s: OT premium at %.1fx not excluded",
					exp.ClassCode, exp.OvertimeRate),
				AffectedItems:       []string{exp.ClassCode},
				CurrentValue:        exp.Payroll,
				CorrectedValue:      exp.Payroll - excl,
				DollarImpact:        excl,
				RecoveryProbability: 0.90,
				Evidence:            "NCCI Basic Manual Rule 2-C-2 - Overtime exclusion",
			})
		}

		if exp.ExecutiveOfficerPayroll > execOfficerCap {
			excess := exp.ExecutiveOfficerPayroll - execOfficerCap
			corrections += excess
			leaks = append(leaks, model.DetectedLeak{
				Kind:                model.LeakExecOfficerCap,
				Description:         fmt.Sprintf("Class %s: executive officer payroll exceeds state cap", exp.ClassCode),
				AffectedItems:       []string{exp.ClassCode},
				CurrentValue:        exp.ExecutiveOfficerPayroll,
				CorrectedValue:      execOfficerCap,
				DollarImpact:        excess,
				RecoveryProbability: 0.99,
				Evidence:            fmt.Sprintf("State maximum officer payroll = $%.0f", execOfficerCap),
			})
		}

		if exp.SeverancePay > 0 {
			corrections += exp.SeverancePay
			leaks = append(leaks, model.DetectedLeak{
				Kind:                model.LeakSeverancePay,
				Description:         fmt.Sprintf("Class %s: severance pay included", exp.ClassCode),
				AffectedItems:       []string{exp.ClassCode},
				CurrentValue:        exp.Payroll,
				CorrectedValue:      exp.Payroll - exp.SeverancePay,
				DollarImpact:        exp.SeverancePay,
				RecoveryProbability: 0.85,
				Evidence:            "NCCI Basic Manual Rule 2-B-2-e - Severance pay excluded",
			})
		}

		if exp.TravelReimbursements > 0 {
			corrections += exp.TravelReimbursements
			leaks = append(leaks, model.DetectedLeak{
				Kind:                model.LeakTravelExpense,
				Description:         fmt.Sprintf("Class %s: travel reimbursements included", exp.ClassCode),
				AffectedItems:       []string{exp.ClassCode},
				CurrentValue:        exp.Payroll,
				CorrectedValue:      exp.Payroll - exp.TravelReimbursements,
				DollarImpact:        exp.TravelReimbursements,
				RecoveryProbability: 0.80,
				Evidence:            "NCCI Basic Manual Rule 2-B-2-h - Expense reimbursements excluded",
			})
		}

		if exp.SubcontractorPayroll > 0 {
			corrections += exp.SubcontractorPayroll
			leaks = append(leaks, model.DetectedLeak{
				Kind:                model.LeakSubcontractorDupe,
				Description:         fmt.Sprintf("Class %s: subcontractor payroll double-counted (COI on file)", exp.ClassCode),
				AffectedItems:       []string{exp.ClassCode},
				CurrentValue:        exp.Payroll,
				CorrectedValue:      exp.Payroll - exp.SubcontractorPayroll,
				DollarImpact:        exp.SubcontractorPayroll,
				RecoveryProbability: 0.75,
				Evidence:            "Certificates of Insurance on file for subcontractors",
			})
		}

		out := exp
		out.Payroll -= corrections
		adjusted = append(adjusted, out)
	}

	return adjusted, leaks
}
