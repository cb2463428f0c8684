package payroll

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/payroll"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/staff"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubPayrollRepo struct {
	run         payroll.PayRun
	runErr      error
	slip        payroll.PayslipSnapshot
	updateCalls int
	updateErr   error
}

func (s *stubPayrollRepo) Runs(ctx context.Context) ([]payroll.PayRun, error) {
	return []payroll.PayRun{s.run}, nil
}

func (s *stubPayrollRepo) Run(ctx context.Context, id string) (payroll.PayRun, error) {
	if s.runErr != nil {
		return payroll.PayRun{}, s.runErr
	}
	return s.run, nil
}

func (s *stubPayrollRepo) Finalize(ctx context.Context, id string) (payroll.PayRun, error) {
	finalized := s.run
	finalized.Status = payroll.StatusFinalized
	return finalized, nil
}

func (s *stubPayrollRepo) Payslips(ctx context.Context, runID string) ([]payroll.PayslipSnapshot, error) {
	return []payroll.PayslipSnapshot{s.slip}, nil
}

func (s *stubPayrollRepo) Payslip(ctx context.Context, runID, staffID string) (payroll.PayslipSnapshot, error) {
	return s.slip, nil
}

func (s *stubPayrollRepo) UpdateDailyEntry(ctx context.Context, runID, staffID string, req payroll.UpdateDailyEntryRequest) error {
	s.updateCalls++
	return s.updateErr
}

type stubStaffRepo struct {
	member staff.Staff
	err    error
}

func (s *stubStaffRepo) List(ctx context.Context, zoneID string) ([]staff.Staff, error) {
	return []staff.Staff{s.member}, nil
}
func (s *stubStaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	if s.err != nil {
		return staff.Staff{}, s.err
	}
	return s.member, nil
}
func (s *stubStaffRepo) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.Staff, error) {
	return s.member, nil
}
func (s *stubStaffRepo) Update(ctx context.Context, id string, req staff.UpdateStaffRequest) (staff.Staff, error) {
	return s.member, nil
}
func (s *stubStaffRepo) Delete(ctx context.Context, id string) error { return nil }

func draftRun() payroll.PayRun {
	return payroll.PayRun{
		ID:          "run-1",
		PeriodStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:      payroll.StatusDraft,
	}
}

func sampleSlip() payroll.PayslipSnapshot {
	return payroll.PayslipSnapshot{
		RunID:        "run-1",
		StaffID:      "s1",
		FirstName:    "Thandi",
		LastName:     "Nkosi",
		TotalHours:   168,
		GrossPay:     24000,
		NetPay:       19800,
		SnapshotRate: 142.85,
		Deductions:   map[string]float64{"PAYE": 3600, "UIF": 240, "Pension": 360, "Medical": 0},
		DailyBreakdown: []payroll.DailyEntry{
			{Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), Hours: 8, Rate: 142.85, Amount: 1142.80},
			{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Hours: 7.5, Rate: 142.85, Amount: 1071.38},
		},
	}
}

func TestUpdateDailyEntry_RejectsFinalizedRunBeforeUpstreamCall(t *testing.T) {
	finalized := draftRun()
	finalized.Status = payroll.StatusFinalized
	repo := &stubPayrollRepo{run: finalized, slip: sampleSlip()}
	svc := NewPayrollService(repo, &stubStaffRepo{}, testLogger())

	_, err := svc.UpdateDailyEntry(context.Background(), "run-1", "s1", payroll.UpdateDailyEntryRequest{
		Date:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Hours: 6,
	})

	assert.ErrorIs(t, err, payroll.ErrRunFinalized)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUpdateDailyEntry_ValidatesHoursRange(t *testing.T) {
	repo := &stubPayrollRepo{run: draftRun(), slip: sampleSlip()}
	svc := NewPayrollService(repo, &stubStaffRepo{}, testLogger())

	_, err := svc.UpdateDailyEntry(context.Background(), "run-1", "s1", payroll.UpdateDailyEntryRequest{
		Date:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Hours: 25,
	})

	assert.Error(t, err)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUpdateDailyEntry_RefetchesSnapshotAfterEdit(t *testing.T) {
	slip := sampleSlip()
	slip.TotalHours = 166.5
	repo := &stubPayrollRepo{run: draftRun(), slip: slip}
	svc := NewPayrollService(repo, &stubStaffRepo{}, testLogger())

	got, err := svc.UpdateDailyEntry(context.Background(), "run-1", "s1", payroll.UpdateDailyEntryRequest{
		Date:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Hours: 6.5,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
	// The returned snapshot is the upstream refetch, not a local recompute.
	assert.Equal(t, 166.5, got.TotalHours)
}

func TestFinalize_RejectsAlreadyFinalizedRun(t *testing.T) {
	finalized := draftRun()
	finalized.Status = payroll.StatusFinalized
	repo := &stubPayrollRepo{run: finalized}
	svc := NewPayrollService(repo, &stubStaffRepo{}, testLogger())

	_, err := svc.Finalize(context.Background(), "run-1")
	assert.ErrorIs(t, err, payroll.ErrRunFinalized)
}

func TestPayslipPDF_RendersDocument(t *testing.T) {
	repo := &stubPayrollRepo{run: draftRun(), slip: sampleSlip()}
	svc := NewPayrollService(repo, &stubStaffRepo{member: staff.Staff{ID: "s1"}}, testLogger())

	export, err := svc.PayslipPDF(context.Background(), "run-1", "s1")
	require.NoError(t, err)

	assert.Equal(t, "Payslip_Thandi_Nkosi_2024-03-01.pdf", export.Filename)
	require.True(t, len(export.Content) > 4)
	assert.Equal(t, "%PDF", string(export.Content[:4]))
}

func TestPayslipPDF_TemporaryWorkerFilename(t *testing.T) {
	repo := &stubPayrollRepo{run: draftRun(), slip: sampleSlip()}
	svc := NewPayrollService(repo, &stubStaffRepo{member: staff.Staff{ID: "s1", Temporary: true}}, testLogger())

	export, err := svc.PayslipPDF(context.Background(), "run-1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "Payslip_s1_Thandi_Nkosi_2024-03-31.pdf", export.Filename)
}

func TestPayslipPDF_StaffLookupFailureFallsBackToRegularFilename(t *testing.T) {
	repo := &stubPayrollRepo{run: draftRun(), slip: sampleSlip()}
	svc := NewPayrollService(repo, &stubStaffRepo{err: staff.ErrStaffNotFound}, testLogger())

	export, err := svc.PayslipPDF(context.Background(), "run-1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "Payslip_Thandi_Nkosi_2024-03-01.pdf", export.Filename)
}

func TestPayslipPDF_LongBreakdownPaginates(t *testing.T) {
	slip := sampleSlip()
	slip.DailyBreakdown = nil
	for day := 0; day < 120; day++ {
		slip.DailyBreakdown = append(slip.DailyBreakdown, payroll.DailyEntry{
			Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
			Hours:  8,
			Rate:   142.85,
			Amount: 1142.80,
		})
	}
	repo := &stubPayrollRepo{run: draftRun(), slip: slip}
	svc := NewPayrollService(repo, &stubStaffRepo{}, testLogger())

	export, err := svc.PayslipPDF(context.Background(), "run-1", "s1")
	require.NoError(t, err)
	assert.NotEmpty(t, export.Content)
}

func TestPayslipFilename_SqueezesWhitespace(t *testing.T) {
	slip := payroll.PayslipSnapshot{FirstName: " Jean Paul ", LastName: "du Toit"}
	name := PayslipFilename(draftRun(), slip)
	assert.Equal(t, "Payslip_Jean_Paul_du_Toit_2024-03-01.pdf", name)
}
