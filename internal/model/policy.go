package model

// PolicyInfo is the policy metadata handed over by the normalization layer.
type PolicyInfo struct {
	PolicyNumber          string  `json:"policy_number"`
	State                 string  `json:"state"`
	EffectiveDate         Date    `json:"policy_effective_date"`
	ExpirationDate        Date    `json:"policy_expiration_date"`
	AnniversaryRatingDate Date    `json:"anniversary_rating_date"`
	TotalManualPremium    float64 `json:"total_manual_premium"`
	TotalStandardPremium  float64 `json:"total_standard_premium"`
	CurrentMod            float64 `json:"current_mod"`
}

// ModAppliedCorrectly reports whether the anniversary rating date lines up
// with the policy effective date. A mismatch means the carrier applied the
// mod outside its legal window.
func (p *PolicyInfo) ModAppliedCorrectly() bool {
	return p.AnniversaryRatingDate.Equal(p.EffectiveDate.Time)
}
