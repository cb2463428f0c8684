package report

import "github.com/sebenza-hr/staffdesk-bff/internal/pkg/validator"

type EMP201Request struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r EMP201Request) Validate() error {
	var errs validator.ValidationErrors
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be 1-12"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EMP501Request struct {
	Type    EMP501Type `json:"type"`
	TaxYear string     `json:"tax_year"`
}

func (r EMP501Request) Validate() error {
	var errs validator.ValidationErrors
	if r.Type != EMP501Interim && r.Type != EMP501Annual {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be interim or annual"})
	}
	if !validator.IsNumeric(r.TaxYear) {
		errs = append(errs, validator.ValidationError{Field: "tax_year", Message: "tax_year must be a year"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettlementRequest struct {
	TaxYear string `json:"tax_year"`
}

func (r SettlementRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsNumeric(r.TaxYear) {
		errs = append(errs, validator.ValidationError{Field: "tax_year", Message: "tax_year must be a year"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Export is a rendered CSV document ready for download.
type Export struct {
	Filename string
	Content  string
}
