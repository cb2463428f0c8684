package report

import "context"

// ReportRepository is implemented by the upstream staff API client.
type ReportRepository interface {
	EMP201(ctx context.Context, year, month int) (*EMP201, error)
	EMP501(ctx context.Context, typ EMP501Type, taxYear string) (*EMP501, error)
	Settlement(ctx context.Context, taxYear string) (*Settlement, error)
}
