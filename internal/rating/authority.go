package rating

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the two configuration failure classes. Both fail the
// audit before any pass runs; the engine never substitutes a default formula.
var (
	ErrStateNotSupported    = errors.New("state not supported")
	ErrBureauNotImplemented = errors.New("bureau formula not implemented")
)

const kpFloor = 7500.0

// Params holds one jurisdiction's experience-rating values as published in
// its rating-values filing.
type Params struct {
	StateCode string
	StateName string

	// Bureau is "NCCI" or the independent bureau name ("WCIRB", ...).
	// NCCI is true only when the standard NCCI W/B formula applies.
	Bureau string
	NCCI   bool

	SplitPoint       float64
	SALPerClaim      float64
	SALMultipleClaim float64
	GValue           float64
	SValue           float64 // S = G × 250,000

	ERAEligible bool
	ERADiscount float64 // med-only ratable portion, e.g. 0.30

	EffectiveDate     time.Time
	ELRDecimals       int
	MinExpectedLosses float64
}

// Authority exposes one jurisdiction's rating behavior to the engine.
type Authority struct {
	Params
}

// WB computes the weighting value W and ballast B for the given expected
// losses E. NCCI states use the standard 2026 formulas:
//
//	Kp = max(7500, E·(E + 0.01028·S) / (0.75·E + 0.8153·S))
//	Ke = E·(E + 0.0204·S) / (0.1·E + 0.5109·S)
//	B = Kp;  W = (E + Ke) / (E + Kp)
//
// Independent-bureau states return ErrBureauNotImplemented.
func (a *Authority) WB(expectedLosses float64) (w, b float64, err error) {
	if !a.NCCI {
		return 0, 0, fmt.Errorf("state %s (%s): %w", a.StateCode, a.Bureau, ErrBureauNotImplemented)
	}

	e, s := expectedLosses, a.SValue

	kp := kpFloor
	if den := 0.75*e + 0.8153*s; den != 0 {
		if v := e * (e + 0.01028*s) / den; v > kp {
			kp = v
		}
	}

	var ke float64
	if den := 0.1*e + 0.5109*s; den != 0 {
		ke = e * (e + 0.0204*s) / den
	}

	b = kp
	w = (e + ke) / (e + kp)
	return w, b, nil
}

// ApplySALCap caps a single claim at the per-claim accident limitation.
func (a *Authority) ApplySALCap(amount float64) float64 {
	if amount > a.SALPerClaim {
		return a.SALPerClaim
	}
	return amount
}

// ApplyMultipleClaimCap applies the multi-claimant accident rule: if the
// claims from one accident together exceed the multiple-claim cap, every
// claim is scaled by cap/sum so relative weights are preserved.
func (a *Authority) ApplyMultipleClaimCap(amounts []float64) []float64 {
	var total float64
	for _, v := range amounts {
		total += v
	}
	if total <= a.SALMultipleClaim {
		return amounts
	}

	ratio := a.SALMultipleClaim / total
	scaled := make([]float64, len(amounts))
	for i, v := range amounts {
		scaled[i] = v * ratio
	}
	return scaled
}
