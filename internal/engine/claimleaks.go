package engine

import (
	"fmt"

	"github.com/gyeh/modaudit/internal/model"
	"github.com/gyeh/modaudit/internal/normalize"
)

// zombieReserveDays is the inactivity window after which open reserves are
// presumed stale.
const zombieReserveDays = 180

// DetectClaimLeaks scans raw claims for the non-formulaic irregularities:
// subrogation recoveries never credited, stale open reserves, denied claims
// still rated, uncredited second-injury-fund recoveries, and duplicate
// entries. It is a read-only pass independent of the gate pipeline: claims
// are never mutated, only leak records returned. Exclusion of denied claims
// from the corrected mod is the orchestrator's job.
func DetectClaimLeaks(claims []model.Claim, valuationDate model.Date) []model.DetectedLeak {
	var leaks []model.DetectedLeak
	seen := make(map[string]string) // duplicate signature → first claim number

	for _, claim := range claims {
		incurred := claim.IncurredTotal()

		if claim.HasSubrogation() && incurred > 0 {
			leaks = append(leaks, model.DetectedLeak{
				Kind:                model.LeakSubrogation,
				Description:         fmt.Sprintf("Claim %s has subrogation recovery not credited", claim.ClaimNumber),
				AffectedItems:       []string{claim.ClaimNumber},
				CurrentValue:        incurred,
				CorrectedValue:      0,
				DollarImpact:        incurred * 0.25, // conservative until the actual recovery is confirmed
				RecoveryProbability: 0.70,
				Evidence:            "Claim notes: " + claim.Notes,
			})
		}

		if claim.IsOpen() && claim.LastPaymentDate != nil {
			daysInactive := claim.LastPaymentDate.DaysUntil(valuationDate)
			if daysInactive > zombieReserveDays {
				leaks = append(leaks, model.DetectedLeak{
					Kind: model.LeakZombieReserves,
					Description: fmt.Sprintf("Claim %s open %d days with no activity",
						claim.ClaimNumber, daysInactive),
					AffectedItems:       []string{claim.ClaimNumber},
					CurrentValue:        claim.RemainingReserves(),
					CorrectedValue:      0,
					DollarImpact:        claim.RemainingReserves(),
					RecoveryProbability: 0.60,
					Evidence: fmt.Sprintf("Last payment: %s, no activity for %d days",
						claim.LastPaymentDate, daysInactive),
				})
			}
		}

		if claim.IsDenied() && incurred > 0 {
			leaks = append(leaks, model.DetectedLeak{
				Kind:                model.LeakRule4CDenial,
				Description:         fmt.Sprintf("Denied claim %s still in mod", claim.ClaimNumber),
				AffectedItems:       []string{claim.ClaimNumber},
				CurrentValue:        incurred,
				CorrectedValue:      0,
				DollarImpact:        incurred,
				RecoveryProbability: 0.95,
				Evidence:            "NCCI Experience Rating Plan Manual Rule 4-C",
			})
		}

		if claim.HasSIFCredit() {
			leaks = append(leaks, model.DetectedLeak{
				Kind:                model.LeakSIFCredit,
				Description:         fmt.Sprintf("Claim %s has SIF credit not applied", claim.ClaimNumber),
				AffectedItems:       []string{claim.ClaimNumber},
				CurrentValue:        incurred,
				CorrectedValue:      incurred * 0.50,
				DollarImpact:        incurred * 0.50,
				RecoveryProbability: 0.65,
				Evidence:            "Claim notes: " + claim.Notes,
			})
		}

		sig := fmt.Sprintf("%s|%s|%.2f",
			claim.AccidentDate, normalize.Name(claim.ClaimantName), incurred)
		if first, dup := seen[sig]; dup {
			leaks = append(leaks, model.DetectedLeak{
				Kind:                model.LeakDuplicateClaims,
				Description:         fmt.Sprintf("Claims %s and %s are duplicates", first, claim.ClaimNumber),
				AffectedItems:       []string{first, claim.ClaimNumber},
				CurrentValue:        incurred * 2,
				CorrectedValue:      incurred,
				DollarImpact:        incurred,
				RecoveryProbability: 0.90,
				Evidence:            "Same accident date, claimant, and incurred total",
			})
		} else {
			seen[sig] = claim.ClaimNumber
		}
	}

	return leaks
}
