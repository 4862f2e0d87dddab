package model

// ProcessedClaim is a claim after the frequency, ERA, and SAL gates, with
// the outcome of each gate and the final primary/excess split. Each audit
// pass builds its own set; a ProcessedClaim is never mutated after creation.
type ProcessedClaim struct {
	Claim Claim

	ERAApplied       bool
	ERARatableAmount float64

	SALApplied      bool
	SALCappedAmount float64

	FrequencyCapApplied     bool
	FrequencyAdjustedAmount float64

	PrimaryLoss float64
	ExcessLoss  float64
}

// TotalRatableLoss is the loss amount that actually enters the mod formula.
func (p *ProcessedClaim) TotalRatableLoss() float64 {
	return p.PrimaryLoss + p.ExcessLoss
}
