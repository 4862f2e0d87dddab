package engine

import (
	"github.com/gyeh/modaudit/internal/model"
	"github.com/gyeh/modaudit/internal/normalize"
	"github.com/gyeh/modaudit/internal/rating"
)

// CalculateMod applies the NCCI weighted-credibility formula:
//
//	Mod = (Ap + W·Ae + (1−W)·Ee + B) / (Ep + Ee + B)
//
// Expected losses come from the exposures, actual losses from the processed
// claims. A zero denominator is the defined degenerate case and yields the
// neutral mod 1.000, not an error. The result is rounded to 3 decimals
// before it is returned; every downstream comparison sees the rounded value.
func CalculateMod(exposures []model.ClassCodeExposure, processed []model.ProcessedClaim, auth *rating.Authority) (model.ModResult, error) {
	var expectedLosses, expectedPrimary, expectedExcess float64
	for i := range exposures {
		expectedLosses += exposures[i].ExpectedLosses()
		expectedPrimary += exposures[i].ExpectedPrimary()
		expectedExcess += exposures[i].ExpectedExcess()
	}

	var actualPrimary, actualExcess float64
	for i := range processed {
		actualPrimary += processed[i].PrimaryLoss
		actualExcess += processed[i].ExcessLoss
	}

	w, b, err := auth.WB(expectedLosses)
	if err != nil {
		return model.ModResult{}, err
	}

	numerator := actualPrimary + w*actualExcess + (1-w)*expectedExcess + b
	denominator := expectedPrimary + expectedExcess + b

	mod := 1.000
	if denominator != 0 {
		mod = normalize.RoundTo(numerator/denominator, 3)
	}

	return model.ModResult{
		State:           auth.StateCode,
		ExpectedLosses:  expectedLosses,
		ExpectedPrimary: expectedPrimary,
		ExpectedExcess:  expectedExcess,
		ActualPrimary:   actualPrimary,
		ActualExcess:    actualExcess,
		W:               w,
		B:               b,
		SplitPoint:      auth.SplitPoint,
		SALCap:          auth.SALPerClaim,
		Numerator:       numerator,
		Denominator:     denominator,
		ExperienceMod:   mod,
	}, nil
}
