package lossrun

import (
	"fmt"

	"github.com/gyeh/modaudit/internal/model"
	"github.com/gyeh/modaudit/internal/normalize"
)

// ToClaim converts a raw loss-run row into a typed Claim. The accident date
// is required. The last-payment date is optional, but when present it must
// parse: silently dropping it would hide zombie reserves.
func ToClaim(row *model.LossRunRow) (model.Claim, error) {
	if row.ClaimNumber == "" {
		return model.Claim{}, fmt.Errorf("missing claim number")
	}

	accident := normalize.ParseDate(row.AccidentDate)
	if accident == nil {
		return model.Claim{}, fmt.Errorf("claim %s: unparseable accident date %q", row.ClaimNumber, row.AccidentDate)
	}

	var lastPayment *model.Date
	if row.LastPaymentDate != "" {
		t := normalize.ParseDate(row.LastPaymentDate)
		if t == nil {
			return model.Claim{}, fmt.Errorf("claim %s: unparseable last payment date %q", row.ClaimNumber, row.LastPaymentDate)
		}
		lastPayment = &model.Date{Time: *t}
	}

	return model.Claim{
		ClaimNumber:       row.ClaimNumber,
		AccidentDate:      model.Date{Time: *accident},
		ClaimantName:      row.ClaimantName,
		InjuryCode:        row.InjuryCode,
		IncurredIndemnity: row.IncurredIndemnity,
		IncurredMedical:   row.IncurredMedical,
		PaidIndemnity:     row.PaidIndemnity,
		PaidMedical:       row.PaidMedical,
		ReservesIndemnity: row.ReservesIndemnity,
		ReservesMedical:   row.ReservesMedical,
		Status:            row.Status,
		LastPaymentDate:   lastPayment,
		Notes:             row.ClaimNotes,
	}, nil
}
