package report

import "context"

type ReportService interface {
	EMP201(ctx context.Context, req EMP201Request) (*EMP201, error)
	EMP501(ctx context.Context, req EMP501Request) (*EMP501, error)
	Settlement(ctx context.Context, req SettlementRequest) (*Settlement, error)

	ExportEMP201(ctx context.Context, req EMP201Request) (Export, error)
	ExportEMP201SARS(ctx context.Context, req EMP201Request) (Export, error)
	ExportEMP501(ctx context.Context, req EMP501Request) (Export, error)
	ExportEMP501SARS(ctx context.Context, req EMP501Request) (Export, error)
	ExportSettlement(ctx context.Context, req SettlementRequest) (Export, error)
}
