package payroll

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/payroll"
)

const (
	pageTopMargin    = 15.0
	pageLeftMargin   = 15.0
	pageBottomLimit  = 282.0
	lineHeight       = 6.0
	sectionGap       = 4.0
	labelColumnWidth = 60.0
	valueColumnWidth = 50.0
)

type payslipDoc struct {
	pdf *fpdf.Fpdf
}

func newPayslipDoc() *payslipDoc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageLeftMargin, pageTopMargin, pageLeftMargin)
	// Page breaks are placed by hand so a row is never split across pages.
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &payslipDoc{pdf: pdf}
}

// ensureRoom starts a fresh page when the next block would run past the
// printable area. Continuation pages carry no repeated headers.
func (d *payslipDoc) ensureRoom(height float64) {
	if d.pdf.GetY()+height > pageBottomLimit {
		d.pdf.AddPage()
		d.pdf.SetY(pageTopMargin)
	}
}

func (d *payslipDoc) heading(text string) {
	d.ensureRoom(lineHeight + sectionGap)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, lineHeight, text, "", 1, "L", false, 0, "")
	d.pdf.Ln(1)
}

func (d *payslipDoc) labelValue(label, value string) {
	d.ensureRoom(lineHeight)
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.CellFormat(labelColumnWidth, lineHeight, label, "", 0, "L", false, 0, "")
	d.pdf.CellFormat(valueColumnWidth, lineHeight, value, "", 1, "R", false, 0, "")
}

func (d *payslipDoc) tableRow(cells []string, widths []float64, bold bool) {
	d.ensureRoom(lineHeight)
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont("Helvetica", style, 9)
	for i, cell := range cells {
		align := "R"
		if i == 0 {
			align = "L"
		}
		d.pdf.CellFormat(widths[i], lineHeight, cell, "B", 0, align, false, 0, "")
	}
	d.pdf.Ln(lineHeight)
}

func (d *payslipDoc) gap() {
	d.pdf.Ln(sectionGap)
}

func pdfMoney(v float64) string {
	return fmt.Sprintf("R %.2f", v)
}

// pdfHours keeps whatever precision the snapshot carried.
func pdfHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "h"
}

// RenderPayslipPDF lays out one payslip snapshot as a printable document.
// Deductions with a zero amount are omitted; the daily breakdown is printed
// in date order regardless of the order the snapshot arrived in.
func RenderPayslipPDF(run payroll.PayRun, slip payroll.PayslipSnapshot) ([]byte, error) {
	doc := newPayslipDoc()

	doc.pdf.SetFont("Helvetica", "B", 16)
	doc.pdf.CellFormat(0, 10, "Payslip", "", 1, "L", false, 0, "")
	doc.pdf.SetFont("Helvetica", "", 10)
	period := fmt.Sprintf("Pay period %s to %s",
		run.PeriodStart.Format("2006-01-02"), run.PeriodEnd.Format("2006-01-02"))
	doc.pdf.CellFormat(0, lineHeight, period, "", 1, "L", false, 0, "")
	doc.gap()

	doc.heading("Employee")
	doc.labelValue("Name", strings.TrimSpace(slip.FirstName+" "+slip.LastName))
	doc.labelValue("Staff ID", slip.StaffID)
	doc.labelValue("Rate", pdfMoney(slip.SnapshotRate))
	doc.gap()

	doc.heading("Summary")
	doc.labelValue("Total hours", pdfHours(slip.TotalHours))
	doc.labelValue("Gross pay", pdfMoney(slip.GrossPay))

	keys := make([]string, 0, len(slip.Deductions))
	for k, v := range slip.Deductions {
		if v > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		doc.labelValue(k, "- "+pdfMoney(slip.Deductions[k]))
	}

	doc.pdf.SetFont("Helvetica", "B", 10)
	doc.ensureRoom(lineHeight)
	doc.pdf.CellFormat(labelColumnWidth, lineHeight, "Net pay", "T", 0, "L", false, 0, "")
	doc.pdf.CellFormat(valueColumnWidth, lineHeight, pdfMoney(slip.NetPay), "T", 1, "R", false, 0, "")
	doc.gap()

	if len(slip.DailyBreakdown) > 0 {
		entries := make([]payroll.DailyEntry, len(slip.DailyBreakdown))
		copy(entries, slip.DailyBreakdown)
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Date.Before(entries[j].Date)
		})

		doc.heading("Daily breakdown")
		widths := []float64{30, 25, 30, 30, 65}
		doc.tableRow([]string{"Date", "Hours", "Rate", "Amount", "Note"}, widths, true)
		for _, e := range entries {
			doc.tableRow([]string{
				e.Date.Format("2006-01-02"),
				pdfHours(e.Hours),
				pdfMoney(e.Rate),
				pdfMoney(e.Amount),
				e.Note,
			}, widths, false)
		}
		doc.gap()
	}

	if len(slip.Warnings) > 0 {
		doc.heading("Warnings")
		doc.pdf.SetFont("Helvetica", "", 9)
		for _, w := range slip.Warnings {
			doc.ensureRoom(lineHeight)
			doc.pdf.CellFormat(0, lineHeight, "- "+w, "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// PayslipFilename is the download name for a regular staff member's payslip.
func PayslipFilename(run payroll.PayRun, slip payroll.PayslipSnapshot) string {
	name := strings.Join(strings.Fields(slip.FirstName+" "+slip.LastName), "_")
	if name == "" {
		name = slip.StaffID
	}
	return fmt.Sprintf("Payslip_%s_%s.pdf", name, run.PeriodStart.Format("2006-01-02"))
}

// TempPayslipFilename is the download name used for temporary workers, who
// are identified by staff ID ahead of their name and filed under the period
// end date.
func TempPayslipFilename(run payroll.PayRun, slip payroll.PayslipSnapshot) string {
	return fmt.Sprintf("Payslip_%s_%s_%s_%s.pdf",
		slip.StaffID, slip.FirstName, slip.LastName, run.PeriodEnd.Format("2006-01-02"))
}
