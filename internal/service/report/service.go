package report

import (
	"context"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/report"
)

type ReportServiceImpl struct {
	repo report.ReportRepository
}

func NewReportService(repo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{repo: repo}
}

func (s *ReportServiceImpl) EMP201(ctx context.Context, req report.EMP201Request) (*report.EMP201, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.EMP201(ctx, req.Year, req.Month)
}

func (s *ReportServiceImpl) EMP501(ctx context.Context, req report.EMP501Request) (*report.EMP501, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.EMP501(ctx, req.Type, req.TaxYear)
}

func (s *ReportServiceImpl) Settlement(ctx context.Context, req report.SettlementRequest) (*report.Settlement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Settlement(ctx, req.TaxYear)
}

// The export methods fetch first and format second; a report that has not
// been generated surfaces report.ErrReportNotAvailable before any formatter
// runs, so the formatters never see a nil report.

func (s *ReportServiceImpl) ExportEMP201(ctx context.Context, req report.EMP201Request) (report.Export, error) {
	rep, err := s.EMP201(ctx, req)
	if err != nil {
		return report.Export{}, err
	}
	return report.Export{
		Filename: EMP201Filename(*rep),
		Content:  EMP201ReviewCSV(*rep),
	}, nil
}

func (s *ReportServiceImpl) ExportEMP201SARS(ctx context.Context, req report.EMP201Request) (report.Export, error) {
	rep, err := s.EMP201(ctx, req)
	if err != nil {
		return report.Export{}, err
	}
	return report.Export{
		Filename: EMP201SARSFilename(*rep),
		Content:  EMP201SARSCSV(*rep),
	}, nil
}

func (s *ReportServiceImpl) ExportEMP501(ctx context.Context, req report.EMP501Request) (report.Export, error) {
	rep, err := s.EMP501(ctx, req)
	if err != nil {
		return report.Export{}, err
	}
	return report.Export{
		Filename: EMP501Filename(*rep),
		Content:  EMP501ReviewCSV(*rep),
	}, nil
}

func (s *ReportServiceImpl) ExportEMP501SARS(ctx context.Context, req report.EMP501Request) (report.Export, error) {
	rep, err := s.EMP501(ctx, req)
	if err != nil {
		return report.Export{}, err
	}
	return report.Export{
		Filename: EMP501SARSFilename(*rep),
		Content:  EMP501SARSCSV(*rep),
	}, nil
}

func (s *ReportServiceImpl) ExportSettlement(ctx context.Context, req report.SettlementRequest) (report.Export, error) {
	rep, err := s.Settlement(ctx, req)
	if err != nil {
		return report.Export{}, err
	}
	return report.Export{
		Filename: SettlementFilename(*rep),
		Content:  SettlementCSV(*rep),
	}, nil
}
