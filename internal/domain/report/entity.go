package report

// UIFSplit is the UIF contribution breakdown on an EMP201.
type UIFSplit struct {
	Total    float64 `json:"total"`
	Employer float64 `json:"employer"`
	Employee float64 `json:"employee"`
}

// EMP201 is the monthly employer declaration, computed server-side and only
// formatted and exported here.
type EMP201 struct {
	Month         string   `json:"month"` // e.g. "March"
	MonthNumber   int      `json:"month_number"`
	Year          int      `json:"year"`
	EmployeeCount int      `json:"employee_count"`
	PAYE          float64  `json:"paye"`
	UIF           UIFSplit `json:"uif"`
	SDL           float64  `json:"sdl"`
	ETI           float64  `json:"eti"`
	NetLiability  float64  `json:"net_liability"`
}

type EMP501Type string

const (
	EMP501Interim EMP501Type = "interim"
	EMP501Annual  EMP501Type = "annual"
)

// EMP501Month is one month's declared liability on the reconciliation.
type EMP501Month struct {
	Month string  `json:"month"`
	PAYE  float64 `json:"paye"`
	UIF   float64 `json:"uif"`
	SDL   float64 `json:"sdl"`
	ETI   float64 `json:"eti"`
}

// EMP501 is the employer reconciliation declaration for an interim or
// annual submission period.
type EMP501 struct {
	Type      EMP501Type    `json:"type"`
	TaxYear   string        `json:"tax_year"` // e.g. "2024"
	Months    []EMP501Month `json:"months"`
	TotalPAYE float64       `json:"total_paye"`
	TotalUIF  float64       `json:"total_uif"`
	TotalSDL  float64       `json:"total_sdl"`
	TotalETI  float64       `json:"total_eti"`
}

// SettlementRow is one staff member's year-end settlement position.
type SettlementRow struct {
	StaffID     string  `json:"staff_id"`
	StaffName   string  `json:"staff_name"`
	GrossAnnual float64 `json:"gross_annual"`
	TaxPaid     float64 `json:"tax_paid"`
	TaxDue      float64 `json:"tax_due"`
	Balance     float64 `json:"balance"`
}

// Settlement is the year-end settlement report.
type Settlement struct {
	TaxYear string          `json:"tax_year"`
	Rows    []SettlementRow `json:"rows"`
}
