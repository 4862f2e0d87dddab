package engine

import (
	"fmt"

	"github.com/gyeh/modaudit/internal/model"
	"github.com/gyeh/modaudit/internal/rating"
)

// dateGroup carries the frequency-gate outcome for all claims sharing an
// accident date.
type dateGroup struct {
	ratio      float64
	capApplied bool
}

// ProcessClaims runs every claim through the three gates in order:
//
//  1. Frequency: claims sharing an accident date are treated as one
//     accident; if their combined incurred total exceeds the multiple-claim
//     cap, each is scaled by cap/sum.
//  2. ERA: med-only claims in ERA states rate at the discounted portion
//     (default 30%) of incurred.
//  3. SAL: the per-claim accident limitation caps the ERA-stage amount.
//
// The frequency ratio is applied after SAL capping, then the result splits
// into primary (up to the split point) and excess. Group ratios are resolved
// up front so claims can be processed, and leaks emitted, in input order —
// the output is deterministic for identical input.
//
// Returns one ProcessedClaim per input claim plus the gate-originated leaks.
func ProcessClaims(claims []model.Claim, auth *rating.Authority) ([]model.ProcessedClaim, []model.DetectedLeak) {
	groups := groupByAccidentDate(claims, auth)

	processed := make([]model.ProcessedClaim, 0, len(claims))
	var leaks []model.DetectedLeak

	for _, claim := range claims {
		group := groups[claim.AccidentDate.String()]
		incurred := claim.IncurredTotal()

		// Gate 2: ERA
		eraRatable := incurred
		eraApplied := false
		if auth.ERAEligible && claim.IsMedicalOnly() {
			eraRatable = incurred * auth.ERADiscount
			eraApplied = true

			if incurred > eraRatable {
				leaks = append(leaks, model.DetectedLeak{
					Kind: model.LeakERAMedicalOnly,
					Description: fmt.Sprintf("Med-only claim %s missing %.0f%% discount",
						claim.ClaimNumber, (1-auth.ERADiscount)*100),
					AffectedItems:       []string{claim.ClaimNumber},
					CurrentValue:        incurred,
					CorrectedValue:      eraRatable,
					DollarImpact:        incurred - eraRatable,
					RecoveryProbability: 0.95,
					Evidence:            "NCCI Experience Rating Plan Manual Rule 2-E-1",
				})
			}
		}

		// Gate 3: SAL
		salCapped := auth.ApplySALCap(eraRatable)
		salApplied := salCapped < eraRatable
		if salApplied {
			leaks = append(leaks, model.DetectedLeak{
				Kind:                model.LeakSplitPointCap,
				Description:         fmt.Sprintf("Claim %s exceeds SAL cap", claim.ClaimNumber),
				AffectedItems:       []string{claim.ClaimNumber},
				CurrentValue:        eraRatable,
				CorrectedValue:      salCapped,
				DollarImpact:        eraRatable - salCapped,
				RecoveryProbability: 0.99,
				Evidence:            fmt.Sprintf("State Per Claim Accident Limitation = $%.0f", auth.SALPerClaim),
			})
		}

		// Gate 1's ratio, applied last
		adjusted := salCapped * group.ratio

		primary := adjusted
		if primary > auth.SplitPoint {
			primary = auth.SplitPoint
		}
		excess := adjusted - primary

		processed = append(processed, model.ProcessedClaim{
			Claim:                   claim,
			ERAApplied:              eraApplied,
			ERARatableAmount:        eraRatable,
			SALApplied:              salApplied,
			SALCappedAmount:         salCapped,
			FrequencyCapApplied:     group.capApplied,
			FrequencyAdjustedAmount: adjusted,
			PrimaryLoss:             primary,
			ExcessLoss:              excess,
		})
	}

	return processed, leaks
}

// groupByAccidentDate resolves the frequency gate: for each accident date
// with more than one claim, compute the proportional-reduction ratio against
// the multiple-claim cap.
func groupByAccidentDate(claims []model.Claim, auth *rating.Authority) map[string]dateGroup {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, c := range claims {
		key := c.AccidentDate.String()
		totals[key] += c.IncurredTotal()
		counts[key]++
	}

	groups := make(map[string]dateGroup, len(totals))
	for key, total := range totals {
		g := dateGroup{ratio: 1.0}
		if counts[key] > 1 && total > auth.SALMultipleClaim {
			g.ratio = auth.SALMultipleClaim / total
			g.capApplied = true
		}
		groups[key] = g
	}
	return groups
}
