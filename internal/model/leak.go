package model

// LeakKind identifies one of the fixed premium-leak categories.
type LeakKind string

const (
	LeakERAMedicalOnly    LeakKind = "era_medical_only"
	LeakSubrogation       LeakKind = "subrogation"
	LeakZombieReserves    LeakKind = "zombie_reserves"
	LeakOvertimePremium   LeakKind = "overtime_premium"
	LeakExecOfficerCap    LeakKind = "exec_officer_cap"
	LeakRule4CDenial      LeakKind = "rule_4c_denial"
	LeakSubcontractorDupe LeakKind = "subcontractor_dupes"
	LeakClassCode8810     LeakKind = "class_code_8810"
	LeakARDMismatch       LeakKind = "ard_mismatch"
	LeakSIFCredit         LeakKind = "sif_credit"
	LeakDuplicateClaims   LeakKind = "duplicate_claims"
	LeakSeverancePay      LeakKind = "severance_pay"
	LeakOCIPWrapUp        LeakKind = "ocip_wrapup"
	LeakValuationWindow   LeakKind = "valuation_window"
	LeakTableDrift        LeakKind = "table_drift"
	LeakDeductible        LeakKind = "deductible_leak"
	LeakOwnershipError    LeakKind = "ownership_error"
	LeakTravelExpense     LeakKind = "travel_expense"
	LeakSplitPointCap     LeakKind = "split_point_cap"
	LeakClericalMixup     LeakKind = "clerical_mixup"
)

// LeakKindInfo packs a kind with its detection priority and display label.
type LeakKindInfo struct {
	Kind     LeakKind
	Priority int
	Label    string
}

// AllLeakKinds lists every leak kind in priority order. The set is closed:
// detection code emits these kinds and nothing else.
var AllLeakKinds = []LeakKindInfo{
	{LeakERAMedicalOnly, 1, "ERA Med-Only Discount Missing"},
	{LeakSubrogation, 2, "Subrogation Recovery Not Credited"},
	{LeakZombieReserves, 3, "Zombie Reserves (180+ days no activity)"},
	{LeakOvertimePremium, 4, "Overtime Premium Included"},
	{LeakExecOfficerCap, 5, "Executive Officer Payroll Exceeds Cap"},
	{LeakRule4CDenial, 6, "Denied Claims in Mod"},
	{LeakSubcontractorDupe, 7, "Subcontractor Double-Dip"},
	{LeakClassCode8810, 8, "Clerical Misclassification"},
	{LeakARDMismatch, 9, "ARD Mismatch (Illegal Mod Application)"},
	{LeakSIFCredit, 10, "SIF Credit Not Applied"},
	{LeakDuplicateClaims, 11, "Duplicate Claims"},
	{LeakSeverancePay, 12, "Severance Pay Included"},
	{LeakOCIPWrapUp, 13, "OCIP/Wrap-up Double-Dip"},
	{LeakValuationWindow, 14, "Valuation Window Error"},
	{LeakTableDrift, 15, "Old ELR/D-Ratio Tables Used"},
	{LeakDeductible, 16, "Claims Below Deductible in Mod"},
	{LeakOwnershipError, 17, "Ownership Change Error"},
	{LeakTravelExpense, 18, "Travel Expense Reimbursements"},
	{LeakSplitPointCap, 19, "Split Point Cap Not Applied"},
	{LeakClericalMixup, 20, "ERW vs Loss Run Data Mismatch"},
}

var leakKindIndex = func() map[LeakKind]LeakKindInfo {
	m := make(map[LeakKind]LeakKindInfo, len(AllLeakKinds))
	for _, info := range AllLeakKinds {
		m[info.Kind] = info
	}
	return m
}()

// Label returns the human-readable label for the kind, or the raw kind
// string if it is unknown.
func (k LeakKind) Label() string {
	if info, ok := leakKindIndex[k]; ok {
		return info.Label
	}
	return string(k)
}

// LeakKindByName returns the LeakKindInfo for the given kind name, or ok=false.
func LeakKindByName(name string) (LeakKindInfo, bool) {
	info, ok := leakKindIndex[LeakKind(name)]
	return info, ok
}

// DetectedLeak is one quantified discrepancy between what the rating rules
// require and what appears to have been applied. Leaks accumulate in
// detection order and are never merged or deduplicated.
type DetectedLeak struct {
	Kind                LeakKind `json:"kind"`
	Description         string   `json:"description"`
	AffectedItems       []string `json:"affected_items"`
	CurrentValue        float64  `json:"current_value"`
	CorrectedValue      float64  `json:"corrected_value"`
	DollarImpact        float64  `json:"dollar_impact"`
	RecoveryProbability float64  `json:"recovery_probability"`
	Evidence            string   `json:"evidence"`
}

// ExpectedRecovery weights the dollar impact by how likely the carrier is
// to accept the correction.
func (l *DetectedLeak) ExpectedRecovery() float64 {
	return l.DollarImpact * l.RecoveryProbability
}
