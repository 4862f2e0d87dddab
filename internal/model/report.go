package model

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/gyeh/modaudit/internal/normalize"
)

// AuditReport is the complete result of one policy audit: both mod passes,
// every detected leak, and the recovery aggregates. It is built once by the
// orchestrator and immutable afterward. It intentionally carries no run ID
// or timestamp: identical inputs must serialize to identical bytes.
type AuditReport struct {
	Policy PolicyInfo

	CurrentMod   ModResult
	CorrectedMod ModResult

	Leaks []DetectedLeak

	TotalLeakImpact  float64
	ExpectedRecovery float64
	ModReduction     float64
	PremiumSavings   float64
}

// reportDoc is the wire format consumed by the letter-generation and
// misclassification collaborators.
type reportDoc struct {
	PolicyNumber          string       `json:"policy_number"`
	State                 string       `json:"state"`
	CurrentMod            float64      `json:"current_mod"`
	CorrectedMod          float64      `json:"corrected_mod"`
	ModReduction          float64      `json:"mod_reduction"`
	PremiumSavings        float64      `json:"premium_savings"`
	TotalLeaksFound       int          `json:"total_leaks_found"`
	TotalLeakImpact       float64      `json:"total_leak_impact"`
	ExpectedRecovery      float64      `json:"expected_recovery"`
	Leaks                 []leakDoc    `json:"leaks"`
	CurrentModBreakdown   ModBreakdown `json:"current_mod_breakdown"`
	CorrectedModBreakdown ModBreakdown `json:"corrected_mod_breakdown"`
}

type leakDoc struct {
	Type                string   `json:"type"`
	Description         string   `json:"description"`
	AffectedItems       []string `json:"affected_items"`
	DollarImpact        float64  `json:"dollar_impact"`
	RecoveryProbability float64  `json:"recovery_probability"`
	Evidence            string   `json:"evidence"`
}

// Serialize renders the report as indented JSON. Field order is fixed by the
// struct layout, so equal reports serialize to equal bytes.
func (r *AuditReport) Serialize() ([]byte, error) {
	doc := reportDoc{
		PolicyNumber:          r.Policy.PolicyNumber,
		State:                 r.Policy.State,
		CurrentMod:            r.CurrentMod.ExperienceMod,
		CorrectedMod:          r.CorrectedMod.ExperienceMod,
		ModReduction:          normalize.RoundTo(r.ModReduction, 3),
		PremiumSavings:        normalize.RoundTo(r.PremiumSavings, 2),
		TotalLeaksFound:       len(r.Leaks),
		TotalLeakImpact:       normalize.RoundTo(r.TotalLeakImpact, 2),
		ExpectedRecovery:      normalize.RoundTo(r.ExpectedRecovery, 2),
		Leaks:                 make([]leakDoc, 0, len(r.Leaks)),
		CurrentModBreakdown:   r.CurrentMod.Breakdown(),
		CorrectedModBreakdown: r.CorrectedMod.Breakdown(),
	}
	for _, leak := range r.Leaks {
		doc.Leaks = append(doc.Leaks, leakDoc{
			Type:                leak.Kind.Label(),
			Description:         leak.Description,
			AffectedItems:       leak.AffectedItems,
			DollarImpact:        normalize.RoundTo(leak.DollarImpact, 2),
			RecoveryProbability: leak.RecoveryProbability,
			Evidence:            leak.Evidence,
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize audit report: %w", err)
	}
	return out, nil
}
