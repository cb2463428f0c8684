package staffapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/report"
)

type uifWire struct {
	Total    *float64 `json:"total"`
	Employer *float64 `json:"employer"`
	Employee *float64 `json:"employee"`
}

type emp201Wire struct {
	Month         *string  `json:"month"`
	MonthNumber   *int     `json:"monthNumber"`
	Year          *int     `json:"year"`
	EmployeeCount *int     `json:"employeeCount"`
	PAYE          *float64 `json:"paye"`
	UIF           *uifWire `json:"uif"`
	SDL           *float64 `json:"sdl"`
	ETI           *float64 `json:"eti"`
	NetLiability  *float64 `json:"netLiability"`
}

func decodeEMP201(w emp201Wire) *report.EMP201 {
	out := &report.EMP201{
		Month:        derefString(w.Month),
		PAYE:         derefFloat(w.PAYE),
		SDL:          derefFloat(w.SDL),
		ETI:          derefFloat(w.ETI),
		NetLiability: derefFloat(w.NetLiability),
	}
	if w.MonthNumber != nil {
		out.MonthNumber = *w.MonthNumber
	}
	if w.Year != nil {
		out.Year = *w.Year
	}
	if w.EmployeeCount != nil {
		out.EmployeeCount = *w.EmployeeCount
	}
	if w.UIF != nil {
		out.UIF = report.UIFSplit{
			Total:    derefFloat(w.UIF.Total),
			Employer: derefFloat(w.UIF.Employer),
			Employee: derefFloat(w.UIF.Employee),
		}
	}
	return out
}

type emp501MonthWire struct {
	Month *string  `json:"month"`
	PAYE  *float64 `json:"paye"`
	UIF   *float64 `json:"uif"`
	SDL   *float64 `json:"sdl"`
	ETI   *float64 `json:"eti"`
}

type emp501Wire struct {
	Type      *string           `json:"type"`
	TaxYear   *string           `json:"taxYear"`
	Months    []emp501MonthWire `json:"months"`
	TotalPAYE *float64          `json:"totalPaye"`
	TotalUIF  *float64          `json:"totalUif"`
	TotalSDL  *float64          `json:"totalSdl"`
	TotalETI  *float64          `json:"totalEti"`
}

func decodeEMP501(w emp501Wire) *report.EMP501 {
	out := &report.EMP501{
		Type:      report.EMP501Type(derefString(w.Type)),
		TaxYear:   derefString(w.TaxYear),
		Months:    make([]report.EMP501Month, 0, len(w.Months)),
		TotalPAYE: derefFloat(w.TotalPAYE),
		TotalUIF:  derefFloat(w.TotalUIF),
		TotalSDL:  derefFloat(w.TotalSDL),
		TotalETI:  derefFloat(w.TotalETI),
	}
	for _, m := range w.Months {
		out.Months = append(out.Months, report.EMP501Month{
			Month: derefString(m.Month),
			PAYE:  derefFloat(m.PAYE),
			UIF:   derefFloat(m.UIF),
			SDL:   derefFloat(m.SDL),
			ETI:   derefFloat(m.ETI),
		})
	}
	return out
}

type settlementRowWire struct {
	StaffID     *string  `json:"staffId"`
	StaffName   *string  `json:"staffName"`
	GrossAnnual *float64 `json:"grossAnnual"`
	TaxPaid     *float64 `json:"taxPaid"`
	TaxDue      *float64 `json:"taxDue"`
	Balance     *float64 `json:"balance"`
}

type settlementWire struct {
	TaxYear *string             `json:"taxYear"`
	Rows    []settlementRowWire `json:"rows"`
}

func decodeSettlement(w settlementWire) *report.Settlement {
	out := &report.Settlement{
		TaxYear: derefString(w.TaxYear),
		Rows:    make([]report.SettlementRow, 0, len(w.Rows)),
	}
	for _, r := range w.Rows {
		out.Rows = append(out.Rows, report.SettlementRow{
			StaffID:     derefString(r.StaffID),
			StaffName:   derefString(r.StaffName),
			GrossAnnual: derefFloat(r.GrossAnnual),
			TaxPaid:     derefFloat(r.TaxPaid),
			TaxDue:      derefFloat(r.TaxDue),
			Balance:     derefFloat(r.Balance),
		})
	}
	return out
}

type ReportRepository struct {
	client *Client
}

func NewReportRepository(client *Client) *ReportRepository {
	return &ReportRepository{client: client}
}

func (r *ReportRepository) EMP201(ctx context.Context, year, month int) (*report.EMP201, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))

	var payload struct {
		Data *emp201Wire `json:"data"`
	}
	if err := r.client.get(ctx, "/reports/emp201", query, &payload); err != nil {
		if IsNotFound(err) {
			return nil, report.ErrReportNotAvailable
		}
		return nil, err
	}
	if payload.Data == nil {
		return nil, report.ErrReportNotAvailable
	}
	return decodeEMP201(*payload.Data), nil
}

func (r *ReportRepository) EMP501(ctx context.Context, typ report.EMP501Type, taxYear string) (*report.EMP501, error) {
	query := url.Values{}
	query.Set("type", string(typ))
	query.Set("taxYear", taxYear)

	var payload struct {
		Data *emp501Wire `json:"data"`
	}
	if err := r.client.get(ctx, "/reports/emp501", query, &payload); err != nil {
		if IsNotFound(err) {
			return nil, report.ErrReportNotAvailable
		}
		return nil, err
	}
	if payload.Data == nil {
		return nil, report.ErrReportNotAvailable
	}
	return decodeEMP501(*payload.Data), nil
}

func (r *ReportRepository) Settlement(ctx context.Context, taxYear string) (*report.Settlement, error) {
	query := url.Values{}
	query.Set("taxYear", taxYear)

	var payload struct {
		Data *settlementWire `json:"data"`
	}
	if err := r.client.get(ctx, "/reports/settlement", query, &payload); err != nil {
		if IsNotFound(err) {
			return nil, report.ErrReportNotAvailable
		}
		return nil, err
	}
	if payload.Data == nil {
		return nil, report.ErrReportNotAvailable
	}
	return decodeSettlement(*payload.Data), nil
}
