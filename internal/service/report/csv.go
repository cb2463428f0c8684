package report

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/report"
)

// SARS line codes for the codified export formats.
const (
	codePAYE        = "4101"
	codeUIFEmployer = "4102"
	codeUIFEmployee = "4103"
	codeETI         = "4118"
	codeSDL         = "4141"
)

// money formats an amount to exactly two decimal places, as the SARS
// reference formats require.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// raw preserves whatever precision the server emitted; the human-review
// formats never round.
func raw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeCSV renders rows to CSV text. Fields containing commas or quotes are
// wrapper-quoted by the writer; plain numeric fields never are.
func writeCSV(rows [][]string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	for _, row := range rows {
		// strings.Builder writes never fail
		_ = w.Write(row)
	}
	w.Flush()
	return b.String()
}

// EMP201ReviewCSV is the row-by-row human-review export of a monthly
// declaration.
func EMP201ReviewCSV(rep report.EMP201) string {
	rows := [][]string{
		{"Description", "Amount"},
		{fmt.Sprintf("EMP201 %s %d", rep.Month, rep.Year), ""},
		{"Employees", strconv.Itoa(rep.EmployeeCount)},
		{"PAYE", raw(rep.PAYE)},
		{"UIF - Employer", raw(rep.UIF.Employer)},
		{"UIF - Employee", raw(rep.UIF.Employee)},
		{"UIF - Total", raw(rep.UIF.Total)},
		{"SDL", raw(rep.SDL)},
		{"ETI", raw(rep.ETI)},
		{"Net Liability", raw(rep.NetLiability)},
	}
	return writeCSV(rows)
}

// EMP201SARSCSV is the codified SARS-eFiling reference export.
func EMP201SARSCSV(rep report.EMP201) string {
	rows := [][]string{
		{"Code", "Description", "Amount"},
		{codePAYE, "PAYE - Pay As You Earn", money(rep.PAYE)},
		{codeUIFEmployer, "UIF - Employer Contribution", money(rep.UIF.Employer)},
		{codeUIFEmployee, "UIF - Employee Contribution", money(rep.UIF.Employee)},
		{codeSDL, "SDL - Skills Development Levy", money(rep.SDL)},
		{codeETI, "ETI - Employment Tax Incentive", money(rep.ETI)},
		{"TOTAL", "Net Liability Due", money(rep.NetLiability)},
	}
	return writeCSV(rows)
}

// EMP501ReviewCSV is the month-by-month reconciliation review export.
func EMP501ReviewCSV(rep report.EMP501) string {
	rows := [][]string{
		{"Month", "PAYE", "UIF", "SDL", "ETI"},
	}
	for _, m := range rep.Months {
		rows = append(rows, []string{m.Month, raw(m.PAYE), raw(m.UIF), raw(m.SDL), raw(m.ETI)})
	}
	rows = append(rows, []string{"Total", raw(rep.TotalPAYE), raw(rep.TotalUIF), raw(rep.TotalSDL), raw(rep.TotalETI)})
	return writeCSV(rows)
}

// EMP501SARSCSV is the codified SARS-eFiling reference export of the
// reconciliation totals. UIF is declared as a combined figure on the
// reconciliation, so the split codes are emitted as one line.
func EMP501SARSCSV(rep report.EMP501) string {
	rows := [][]string{
		{"Code", "Description", "Amount"},
		{codePAYE, "PAYE - Pay As You Earn", money(rep.TotalPAYE)},
		{codeUIFEmployer + "/" + codeUIFEmployee, "UIF - Total Contributions", money(rep.TotalUIF)},
		{codeSDL, "SDL - Skills Development Levy", money(rep.TotalSDL)},
		{codeETI, "ETI - Employment Tax Incentive", money(rep.TotalETI)},
	}
	return writeCSV(rows)
}

// SettlementCSV is the year-end settlement export, one row per staff member
// with a totals trailer.
func SettlementCSV(rep report.Settlement) string {
	rows := [][]string{
		{"Staff ID", "Staff Name", "Gross Annual", "Tax Paid", "Tax Due", "Balance"},
	}
	var gross, paid, due, balance float64
	for _, r := range rep.Rows {
		rows = append(rows, []string{r.StaffID, r.StaffName, raw(r.GrossAnnual), raw(r.TaxPaid), raw(r.TaxDue), raw(r.Balance)})
		gross += r.GrossAnnual
		paid += r.TaxPaid
		due += r.TaxDue
		balance += r.Balance
	}
	rows = append(rows, []string{"Total", "", raw(gross), raw(paid), raw(due), raw(balance)})
	return writeCSV(rows)
}

// Export filename patterns.

func EMP201Filename(rep report.EMP201) string {
	return fmt.Sprintf("EMP201_%d_%02d.csv", rep.Year, rep.MonthNumber)
}

func EMP201SARSFilename(rep report.EMP201) string {
	return fmt.Sprintf("SARS_EMP201_%d%02d.csv", rep.Year, rep.MonthNumber)
}

func EMP501Filename(rep report.EMP501) string {
	return fmt.Sprintf("EMP501_%s_%s.csv", rep.Type, rep.TaxYear)
}

func EMP501SARSFilename(rep report.EMP501) string {
	return fmt.Sprintf("SARS_EMP501_%s_%s.csv", rep.Type, rep.TaxYear)
}

func SettlementFilename(rep report.Settlement) string {
	return fmt.Sprintf("Year_End_Settlement_%s.csv", rep.TaxYear)
}
