// Package bundle loads the typed audit-input bundle produced by the
// document-normalization layer. The engine consumes only these records; it
// never parses source documents itself.
package bundle

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/gyeh/modaudit/internal/model"
)

// Bundle is one policy's complete audit input.
type Bundle struct {
	Policy        model.PolicyInfo          `json:"policy"`
	Exposures     []model.ClassCodeExposure `json:"exposures"`
	Claims        []model.Claim             `json:"claims"`
	ValuationDate model.Date                `json:"valuation_date"`
}

// Load reads and decodes a bundle file, then applies input defaults:
// the state code is uppercased and exposures reporting overtime earnings
// without a rate default to 1.5×.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}

	b.Policy.State = strings.ToUpper(strings.TrimSpace(b.Policy.State))
	for i := range b.Exposures {
		if b.Exposures[i].OvertimeEarnings > 0 && b.Exposures[i].OvertimeRate == 0 {
			b.Exposures[i].OvertimeRate = 1.5
		}
	}

	return &b, nil
}

// Validate checks structural requirements the engine assumes. It does not
// range-check rating values (ELR, D-Ratio); those are the upstream
// normalization layer's responsibility.
func (b *Bundle) Validate() error {
	if b.Policy.PolicyNumber == "" {
		return fmt.Errorf("bundle: policy number is required")
	}
	if len(b.Policy.State) != 2 {
		return fmt.Errorf("bundle: state must be a 2-letter code, got %q", b.Policy.State)
	}
	if b.ValuationDate.IsZero() {
		return fmt.Errorf("bundle: valuation date is required (or pass --valuation-date)")
	}
	for i := range b.Exposures {
		if b.Exposures[i].ClassCode == "" {
			return fmt.Errorf("bundle: exposure %d missing class code", i)
		}
		if b.Exposures[i].Payroll < 0 {
			return fmt.Errorf("bundle: exposure %s has negative payroll", b.Exposures[i].ClassCode)
		}
	}
	for i := range b.Claims {
		if b.Claims[i].ClaimNumber == "" {
			return fmt.Errorf("bundle: claim %d missing claim number", i)
		}
		if b.Claims[i].AccidentDate.IsZero() {
			return fmt.Errorf("bundle: claim %s missing accident date", b.Claims[i].ClaimNumber)
		}
	}
	return nil
}
