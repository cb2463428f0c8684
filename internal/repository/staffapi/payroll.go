package staffapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/payroll"
)

type payRunWire struct {
	ID          *string `json:"id"`
	PayGroupID  *string `json:"payGroupId"`
	PeriodStart *string `json:"periodStart"`
	PeriodEnd   *string `json:"periodEnd"`
	Status      *string `json:"status"`
	CreatedAt   *string `json:"createdAt"`
}

func decodePayRun(w payRunWire) payroll.PayRun {
	return payroll.PayRun{
		ID:          derefString(w.ID),
		PayGroupID:  derefString(w.PayGroupID),
		PeriodStart: parseTimestamp(derefString(w.PeriodStart)),
		PeriodEnd:   parseTimestamp(derefString(w.PeriodEnd)),
		Status:      payroll.RunStatus(derefString(w.Status)),
		CreatedAt:   parseTimestamp(derefString(w.CreatedAt)),
	}
}

type dailyEntryWire struct {
	Date   *string  `json:"date"`
	Hours  *float64 `json:"hours"`
	Rate   *float64 `json:"rate"`
	Amount *float64 `json:"amount"`
	Note   *string  `json:"note"`
}

type payslipWire struct {
	RunID        *string            `json:"runId"`
	StaffID      *string            `json:"staffId"`
	FirstName    *string            `json:"firstName"`
	LastName     *string            `json:"lastName"`
	TotalHours   *float64           `json:"totalHours"`
	GrossPay     *float64           `json:"grossPay"`
	NetPay       *float64           `json:"netPay"`
	SnapshotRate *float64           `json:"snapshotRate"`
	SnapshotData *snapshotWire      `json:"snapshotData"`
	Deductions   map[string]float64 `json:"deductions"`
}

type snapshotWire struct {
	DailyBreakdown []dailyEntryWire   `json:"dailyBreakdown"`
	Deductions     map[string]float64 `json:"deductions"`
	Warnings       []string           `json:"warnings"`
	Error          *string            `json:"error"`
}

func decodePayslip(w payslipWire) payroll.PayslipSnapshot {
	snap := payroll.PayslipSnapshot{
		RunID:        derefString(w.RunID),
		StaffID:      derefString(w.StaffID),
		FirstName:    derefString(w.FirstName),
		LastName:     derefString(w.LastName),
		TotalHours:   derefFloat(w.TotalHours),
		GrossPay:     derefFloat(w.GrossPay),
		NetPay:       derefFloat(w.NetPay),
		SnapshotRate: derefFloat(w.SnapshotRate),
		Deductions:   map[string]float64{},
		Warnings:     []string{},
	}
	// Deductions live inside snapshotData on newer payloads and at the top
	// level on older ones; snapshotData wins when both are present.
	for k, v := range w.Deductions {
		snap.Deductions[k] = v
	}
	if w.SnapshotData != nil {
		for k, v := range w.SnapshotData.Deductions {
			snap.Deductions[k] = v
		}
		if w.SnapshotData.Warnings != nil {
			snap.Warnings = w.SnapshotData.Warnings
		}
		snap.Error = derefString(w.SnapshotData.Error)
		snap.DailyBreakdown = make([]payroll.DailyEntry, 0, len(w.SnapshotData.DailyBreakdown))
		for _, e := range w.SnapshotData.DailyBreakdown {
			snap.DailyBreakdown = append(snap.DailyBreakdown, payroll.DailyEntry{
				Date:   parseTimestamp(derefString(e.Date)),
				Hours:  derefFloat(e.Hours),
				Rate:   derefFloat(e.Rate),
				Amount: derefFloat(e.Amount),
				Note:   derefString(e.Note),
			})
		}
	} else {
		snap.DailyBreakdown = []payroll.DailyEntry{}
	}
	return snap
}

type PayrollRepository struct {
	client *Client
}

func NewPayrollRepository(client *Client) *PayrollRepository {
	return &PayrollRepository{client: client}
}

func (r *PayrollRepository) Runs(ctx context.Context) ([]payroll.PayRun, error) {
	var payload struct {
		Data []payRunWire `json:"data"`
	}
	if err := r.client.get(ctx, "/payroll/runs", nil, &payload); err != nil {
		return nil, err
	}

	out := make([]payroll.PayRun, 0, len(payload.Data))
	for _, w := range payload.Data {
		out = append(out, decodePayRun(w))
	}
	return out, nil
}

func (r *PayrollRepository) Run(ctx context.Context, id string) (payroll.PayRun, error) {
	var payload struct {
		Data payRunWire `json:"data"`
	}
	if err := r.client.get(ctx, "/payroll/runs/"+url.PathEscape(id), nil, &payload); err != nil {
		if IsNotFound(err) {
			return payroll.PayRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayRun{}, err
	}
	return decodePayRun(payload.Data), nil
}

func (r *PayrollRepository) Finalize(ctx context.Context, id string) (payroll.PayRun, error) {
	var payload struct {
		Data payRunWire `json:"data"`
	}
	if err := r.client.send(ctx, http.MethodPost, "/payroll/runs/"+url.PathEscape(id)+"/finalize", nil, &payload); err != nil {
		if IsNotFound(err) {
			return payroll.PayRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayRun{}, err
	}
	return decodePayRun(payload.Data), nil
}

func (r *PayrollRepository) Payslips(ctx context.Context, runID string) ([]payroll.PayslipSnapshot, error) {
	var payload struct {
		Data []payslipWire `json:"data"`
	}
	if err := r.client.get(ctx, "/payroll/runs/"+url.PathEscape(runID)+"/payslips", nil, &payload); err != nil {
		if IsNotFound(err) {
			return nil, payroll.ErrRunNotFound
		}
		return nil, err
	}

	out := make([]payroll.PayslipSnapshot, 0, len(payload.Data))
	for _, w := range payload.Data {
		out = append(out, decodePayslip(w))
	}
	return out, nil
}

func (r *PayrollRepository) Payslip(ctx context.Context, runID, staffID string) (payroll.PayslipSnapshot, error) {
	var payload struct {
		Data payslipWire `json:"data"`
	}
	path := "/payroll/runs/" + url.PathEscape(runID) + "/payslips/" + url.PathEscape(staffID)
	if err := r.client.get(ctx, path, nil, &payload); err != nil {
		if IsNotFound(err) {
			return payroll.PayslipSnapshot{}, payroll.ErrPayslipNotFound
		}
		return payroll.PayslipSnapshot{}, err
	}
	return decodePayslip(payload.Data), nil
}

func (r *PayrollRepository) UpdateDailyEntry(ctx context.Context, runID, staffID string, req payroll.UpdateDailyEntryRequest) error {
	body := map[string]interface{}{
		"date":  req.Date.Format("2006-01-02"),
		"hours": req.Hours,
		"note":  req.Note,
	}
	path := "/payroll/runs/" + url.PathEscape(runID) + "/payslips/" + url.PathEscape(staffID) + "/daily"
	if err := r.client.send(ctx, http.MethodPut, path, body, nil); err != nil {
		if IsNotFound(err) {
			return payroll.ErrPayslipNotFound
		}
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusConflict {
			return payroll.ErrRunFinalized
		}
		return err
	}
	return nil
}
