package model

// LossRunRow is the raw Parquet layout of one loss-run claim line. Dates
// travel as strings in carrier extracts and are parsed during conversion
// to Claim.
type LossRunRow struct {
	ClaimNumber       string  `parquet:"claim_number"`
	AccidentDate      string  `parquet:"accident_date"`
	ClaimantName      string  `parquet:"claimant_name"`
	InjuryCode        string  `parquet:"injury_code,optional"`
	IncurredIndemnity float64 `parquet:"incurred_indemnity"`
	IncurredMedical   float64 `parquet:"incurred_medical"`
	PaidIndemnity     float64 `parquet:"paid_indemnity,optional"`
	PaidMedical       float64 `parquet:"paid_medical,optional"`
	ReservesIndemnity float64 `parquet:"reserves_indemnity,optional"`
	ReservesMedical   float64 `parquet:"reserves_medical,optional"`
	Status            string  `parquet:"status,optional"`
	LastPaymentDate   string  `parquet:"last_payment_date,optional"`
	ClaimNotes        string  `parquet:"claim_notes,optional"`
}
