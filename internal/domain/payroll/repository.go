package payroll

import "context"

// PayrollRepository is implemented by the upstream staff API client.
type PayrollRepository interface {
	Runs(ctx context.Context) ([]PayRun, error)
	Run(ctx context.Context, id string) (PayRun, error)
	Finalize(ctx context.Context, id string) (PayRun, error)
	Payslips(ctx context.Context, runID string) ([]PayslipSnapshot, error)
	Payslip(ctx context.Context, runID, staffID string) (PayslipSnapshot, error)
	UpdateDailyEntry(ctx context.Context, runID, staffID string, req UpdateDailyEntryRequest) error
}
