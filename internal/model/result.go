package model

import "github.com/gyeh/modaudit/internal/normalize"

// ModResult is the full experience-mod formula breakdown for one pass.
// ExperienceMod is rounded to 3 decimals at calculation time; the rounding is
// part of the rating-standard contract, not display formatting.
type ModResult struct {
	State string

	ExpectedLosses  float64
	ExpectedPrimary float64
	ExpectedExcess  float64
	ActualPrimary   float64
	ActualExcess    float64

	W          float64
	B          float64
	SplitPoint float64
	SALCap     float64

	Numerator   float64
	Denominator float64

	ExperienceMod float64
}

// ModBreakdown is the serialized form of a ModResult with the reporting
// precision fixed per field.
type ModBreakdown struct {
	State           string  `json:"state"`
	ExpectedLosses  float64 `json:"expected_losses"`
	ExpectedPrimary float64 `json:"expected_primary"`
	ExpectedExcess  float64 `json:"expected_excess"`
	ActualPrimary   float64 `json:"actual_primary"`
	ActualExcess    float64 `json:"actual_excess"`
	W               float64 `json:"W"`
	B               float64 `json:"B"`
	SplitPoint      float64 `json:"split_point"`
	SALCap          float64 `json:"sal_cap"`
	Numerator       float64 `json:"numerator"`
	Denominator     float64 `json:"denominator"`
	ExperienceMod   float64 `json:"experience_mod"`
}

// Breakdown rounds the result into its reporting form: amounts to cents,
// W to 4 decimals, B to cents, the mod itself to 3 decimals.
func (r *ModResult) Breakdown() ModBreakdown {
	return ModBreakdown{
		State:           r.State,
		ExpectedLosses:  normalize.RoundTo(r.ExpectedLosses, 2),
		ExpectedPrimary: normalize.RoundTo(r.ExpectedPrimary, 2),
		ExpectedExcess:  normalize.RoundTo(r.ExpectedExcess, 2),
		ActualPrimary:   normalize.RoundTo(r.ActualPrimary, 2),
		ActualExcess:    normalize.RoundTo(r.ActualExcess, 2),
		W:               normalize.RoundTo(r.W, 4),
		B:               normalize.RoundTo(r.B, 2),
		SplitPoint:      r.SplitPoint,
		SALCap:          r.SALCap,
		Numerator:       normalize.RoundTo(r.Numerator, 2),
		Denominator:     normalize.RoundTo(r.Denominator, 2),
		ExperienceMod:   normalize.RoundTo(r.ExperienceMod, 3),
	}
}
