package model

// ClassCodeExposure is the payroll and rating values for one class code,
// with the payroll decomposed into the components the adjuster rules need.
type ClassCodeExposure struct {
	ClassCode   string  `json:"class_code"`
	Description string  `json:"description"`
	Payroll     float64 `json:"payroll"`
	ELR         float64 `json:"elr"`
	DRatio      float64 `json:"d_ratio"`

	OvertimeEarnings        float64 `json:"overtime_earnings"`
	OvertimeRate            float64 `json:"overtime_rate"`
	ExecutiveOfficerPayroll float64 `json:"executive_officer_payroll"`
	SeverancePay            float64 `json:"severance_pay"`
	TravelReimbursements    float64 `json:"travel_reimbursements"`
	SubcontractorPayroll    float64 `json:"subcontractor_payroll"`
}

// ExpectedLosses is E = (payroll / 100) × ELR.
func (e *ClassCodeExposure) ExpectedLosses() float64 {
	return e.Payroll / 100.0 * e.ELR
}

// ExpectedPrimary is Ep = E × D-Ratio.
func (e *ClassCodeExposure) ExpectedPrimary() float64 {
	return e.ExpectedLosses() * e.DRatio
}

// ExpectedExcess is Ee = E − Ep.
func (e *ClassCodeExposure) ExpectedExcess() float64 {
	return e.ExpectedLosses() - e.ExpectedPrimary()
}
