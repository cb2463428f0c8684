package payroll

import (
	"context"
	"log/slog"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/payroll"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/staff"
)

type PayrollServiceImpl struct {
	repo      payroll.PayrollRepository
	staffRepo staff.StaffRepository
	logger    *slog.Logger
}

func NewPayrollService(repo payroll.PayrollRepository, staffRepo staff.StaffRepository, logger *slog.Logger) payroll.PayrollService {
	return &PayrollServiceImpl{
		repo:      repo,
		staffRepo: staffRepo,
		logger:    logger,
	}
}

func (s *PayrollServiceImpl) Runs(ctx context.Context) ([]payroll.PayRun, error) {
	return s.repo.Runs(ctx)
}

func (s *PayrollServiceImpl) Run(ctx context.Context, id string) (payroll.RunDetailResponse, error) {
	run, err := s.repo.Run(ctx, id)
	if err != nil {
		return payroll.RunDetailResponse{}, err
	}

	slips, err := s.repo.Payslips(ctx, id)
	if err != nil {
		return payroll.RunDetailResponse{}, err
	}

	return payroll.RunDetailResponse{Run: run, Payslips: slips}, nil
}

func (s *PayrollServiceImpl) Finalize(ctx context.Context, id string) (payroll.PayRun, error) {
	run, err := s.repo.Run(ctx, id)
	if err != nil {
		return payroll.PayRun{}, err
	}
	if run.Status == payroll.StatusFinalized {
		return payroll.PayRun{}, payroll.ErrRunFinalized
	}
	return s.repo.Finalize(ctx, id)
}

// UpdateDailyEntry rejects edits to finalized runs before touching the
// upstream, then refetches the snapshot so the caller sees upstream-computed
// totals rather than anything derived locally.
func (s *PayrollServiceImpl) UpdateDailyEntry(ctx context.Context, runID, staffID string, req payroll.UpdateDailyEntryRequest) (payroll.PayslipSnapshot, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipSnapshot{}, err
	}

	run, err := s.repo.Run(ctx, runID)
	if err != nil {
		return payroll.PayslipSnapshot{}, err
	}
	if run.Status == payroll.StatusFinalized {
		return payroll.PayslipSnapshot{}, payroll.ErrRunFinalized
	}

	if err := s.repo.UpdateDailyEntry(ctx, runID, staffID, req); err != nil {
		return payroll.PayslipSnapshot{}, err
	}

	return s.repo.Payslip(ctx, runID, staffID)
}

func (s *PayrollServiceImpl) PayslipPDF(ctx context.Context, runID, staffID string) (payroll.PayslipExport, error) {
	run, err := s.repo.Run(ctx, runID)
	if err != nil {
		return payroll.PayslipExport{}, err
	}

	slip, err := s.repo.Payslip(ctx, runID, staffID)
	if err != nil {
		return payroll.PayslipExport{}, err
	}

	content, err := RenderPayslipPDF(run, slip)
	if err != nil {
		return payroll.PayslipExport{}, err
	}

	filename := PayslipFilename(run, slip)
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		// The regular filename still works without the staff record.
		s.logger.Warn("staff lookup for payslip filename failed",
			slog.String("staff_id", staffID),
			slog.Any("error", err),
		)
	} else if member.Temporary {
		filename = TempPayslipFilename(run, slip)
	}

	return payroll.PayslipExport{Filename: filename, Content: content}, nil
}
