package model

import "strings"

// Injury codes as they appear on NCCI loss runs.
const (
	InjuryFatal            = "1"
	InjuryPermanentTotal   = "2"
	InjuryPermanentPartial = "3"
	InjuryTemporaryTotal   = "4"
	InjuryMinor            = "5"
	InjuryMedicalOnly      = "6"
)

// InjuryCodeLabels maps injury codes to display labels.
var InjuryCodeLabels = map[string]string{
	InjuryFatal:            "Fatal",
	InjuryPermanentTotal:   "Permanent Total",
	InjuryPermanentPartial: "Permanent Partial",
	InjuryTemporaryTotal:   "Temporary Total",
	InjuryMinor:            "Minor",
	InjuryMedicalOnly:      "Medical Only",
}

// Closed note vocabularies for the keyword predicates. Matching is
// case-insensitive substring search over the adjuster notes.
var (
	subrogationKeywords = []string{"subro", "recovery", "third party", "reimbursement"}
	sifKeywords         = []string{"sif", "second injury fund", "state fund"}
)

// Claim is a single loss-run claim as delivered by the normalization layer.
// Amounts are dollars; the incurred total is always derived, never stored.
type Claim struct {
	ClaimNumber       string  `json:"claim_number"`
	AccidentDate      Date    `json:"accident_date"`
	ClaimantName      string  `json:"claimant_name"`
	InjuryCode        string  `json:"injury_code"`
	IncurredIndemnity float64 `json:"incurred_indemnity"`
	IncurredMedical   float64 `json:"incurred_medical"`
	PaidIndemnity     float64 `json:"paid_indemnity"`
	PaidMedical       float64 `json:"paid_medical"`
	ReservesIndemnity float64 `json:"reserves_indemnity"`
	ReservesMedical   float64 `json:"reserves_medical"`
	Status            string  `json:"status"`
	LastPaymentDate   *Date   `json:"last_payment_date,omitempty"`
	Notes             string  `json:"claim_notes"`
}

// IncurredTotal is indemnity plus medical incurred.
func (c *Claim) IncurredTotal() float64 {
	return c.IncurredIndemnity + c.IncurredMedical
}

// RemainingReserves is the open reserve balance across both buckets.
func (c *Claim) RemainingReserves() float64 {
	return c.ReservesIndemnity + c.ReservesMedical
}

// IsMedicalOnly reports whether the claim rates as med-only: injury code 6
// or no indemnity incurred.
func (c *Claim) IsMedicalOnly() bool {
	return c.InjuryCode == InjuryMedicalOnly || c.IncurredIndemnity == 0
}

// IsOpen reports whether the claim status is open.
func (c *Claim) IsOpen() bool {
	return strings.EqualFold(strings.TrimSpace(c.Status), "open")
}

// IsDenied reports whether the status or notes mark the claim denied or
// non-compensable.
func (c *Claim) IsDenied() bool {
	return strings.Contains(strings.ToLower(c.Status), "denied") ||
		strings.Contains(strings.ToLower(c.Notes), "non-comp")
}

// HasSubrogation reports whether the notes mention a third-party recovery.
func (c *Claim) HasSubrogation() bool {
	return containsAny(c.Notes, subrogationKeywords)
}

// HasSIFCredit reports whether the notes mention a second-injury-fund credit.
func (c *Claim) HasSIFCredit() bool {
	return containsAny(c.Notes, sifKeywords)
}

func containsAny(notes string, keywords []string) bool {
	lower := strings.ToLower(notes)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
