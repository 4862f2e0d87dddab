package rating

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// registry holds every jurisdiction the auditor knows about, keyed by
// uppercase 2-letter state code. Only Georgia carries a complete NCCI
// implementation; the bureau states are registered with their published
// caps so lookups succeed, but their WB calls fail loudly.
var registry = map[string]Params{
	"GA": {
		StateCode:         "GA",
		StateName:         "Georgia",
		Bureau:            "NCCI",
		NCCI:              true,
		SplitPoint:        21_500,
		SALPerClaim:       176_000,
		SALMultipleClaim:  352_000, // 2× SAL
		GValue:            12.65,
		SValue:            3_162_500, // 12.65 × 250,000
		ERAEligible:       true,
		ERADiscount:       0.30,
		EffectiveDate:     time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		ELRDecimals:       3,
		MinExpectedLosses: 5_000,
	},
	"CA": {
		StateCode:        "CA",
		StateName:        "California",
		Bureau:           "WCIRB",
		SplitPoint:       24_500,
		SALPerClaim:      175_000,
		SALMultipleClaim: 350_000,
		ERAEligible:      false,
		EffectiveDate:    time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		ELRDecimals:      3,
	},
	"NY": {
		StateCode:        "NY",
		StateName:        "New York",
		Bureau:           "NYCIRB",
		SplitPoint:       17_000,
		SALPerClaim:      250_000,
		SALMultipleClaim: 500_000,
		ERAEligible:      false,
		EffectiveDate:    time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		ELRDecimals:      3,
	},
	"PA": {
		StateCode:        "PA",
		StateName:        "Pennsylvania",
		Bureau:           "PCRB",
		SplitPoint:       42_500,
		SALPerClaim:      272_500,
		SALMultipleClaim: 545_000,
		ERAEligible:      false,
		EffectiveDate:    time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		ELRDecimals:      3,
	},
}

// ForState returns the rating authority for a 2-letter state code.
// Unknown codes fail with ErrStateNotSupported naming the supported set.
func ForState(code string) (*Authority, error) {
	p, ok := registry[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, fmt.Errorf("state %q: %w (supported: %s)",
			code, ErrStateNotSupported, strings.Join(SupportedStates(), ", "))
	}
	return &Authority{Params: p}, nil
}

// SupportedStates lists registered state codes in sorted order.
func SupportedStates() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
