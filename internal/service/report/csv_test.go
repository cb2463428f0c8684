package report

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/report"
)

func emp201Fixture() report.EMP201 {
	return report.EMP201{
		Month:         "March",
		MonthNumber:   3,
		Year:          2024,
		EmployeeCount: 12,
		PAYE:          45000.00,
		UIF:           report.UIFSplit{Total: 6200.00, Employer: 3100, Employee: 3100},
		SDL:           1200.50,
		ETI:           800.00,
		NetLiability:  45600.50,
	}
}

func TestEMP201SARSCSV_ContainsReferenceLines(t *testing.T) {
	out := EMP201SARSCSV(emp201Fixture())

	assert.Contains(t, out, "4101,PAYE - Pay As You Earn,45000.00\n")
	assert.Contains(t, out, "4141,SDL - Skills Development Levy,1200.50\n")
	assert.Contains(t, out, "4102,UIF - Employer Contribution,3100.00\n")
	assert.Contains(t, out, "4103,UIF - Employee Contribution,3100.00\n")
	assert.Contains(t, out, "4118,ETI - Employment Tax Incentive,800.00\n")
	assert.Contains(t, out, "TOTAL,Net Liability Due,45600.50\n")
}

func TestEMP201ReviewCSV_PreservesServerPrecision(t *testing.T) {
	out := EMP201ReviewCSV(emp201Fixture())

	// No forced rounding in the review format.
	assert.Contains(t, out, "SDL,1200.5\n")
	assert.Contains(t, out, "PAYE,45000\n")
	assert.Contains(t, out, "Employees,12\n")
}

func TestSettlementCSV_QuotesCommaFields(t *testing.T) {
	rep := report.Settlement{
		TaxYear: "2024",
		Rows: []report.SettlementRow{
			{StaffID: "s1", StaffName: "Nkosi, Thandi", GrossAnnual: 240000, TaxPaid: 42000, TaxDue: 41500.25, Balance: -499.75},
			{StaffID: "s2", StaffName: "Ben King", GrossAnnual: 180000, TaxPaid: 30000, TaxDue: 30000, Balance: 0},
		},
	}

	out := SettlementCSV(rep)

	// The comma inside the name must be wrapper-quoted; numerics never are.
	assert.Contains(t, out, `s1,"Nkosi, Thandi",240000,42000,41500.25,-499.75`)
	assert.Contains(t, out, "s2,Ben King,180000,30000,30000,0\n")
}

// Every export must re-split cleanly: header + data rows + trailer, with the
// original field count recovered per row even when fields contain commas.
func TestCSVRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		wantRows int
		wantCols int
	}{
		{"emp201 review", EMP201ReviewCSV(emp201Fixture()), 10, 2},
		{"emp201 sars", EMP201SARSCSV(emp201Fixture()), 7, 3},
		{
			"emp501 review",
			EMP501ReviewCSV(report.EMP501{
				Type:    report.EMP501Interim,
				TaxYear: "2024",
				Months: []report.EMP501Month{
					{Month: "March", PAYE: 45000, UIF: 6200, SDL: 1200.5, ETI: 800},
					{Month: "April", PAYE: 46100, UIF: 6300, SDL: 1250, ETI: 800},
				},
				TotalPAYE: 91100, TotalUIF: 12500, TotalSDL: 2450.5, TotalETI: 1600,
			}),
			4, 5,
		},
		{
			"settlement",
			SettlementCSV(report.Settlement{
				TaxYear: "2024",
				Rows: []report.SettlementRow{
					{StaffID: "s1", StaffName: "Nkosi, Thandi", GrossAnnual: 240000},
				},
			}),
			3, 6,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := csv.NewReader(strings.NewReader(tc.content)).ReadAll()
			require.NoError(t, err)
			assert.Len(t, records, tc.wantRows)
			for _, rec := range records {
				assert.Len(t, rec, tc.wantCols)
			}
		})
	}
}

func TestExportFilenames(t *testing.T) {
	assert.Equal(t, "EMP201_2024_03.csv", EMP201Filename(emp201Fixture()))
	assert.Equal(t, "SARS_EMP201_202403.csv", EMP201SARSFilename(emp201Fixture()))

	emp501 := report.EMP501{Type: report.EMP501Annual, TaxYear: "2024"}
	assert.Equal(t, "EMP501_annual_2024.csv", EMP501Filename(emp501))
	assert.Equal(t, "SARS_EMP501_annual_2024.csv", EMP501SARSFilename(emp501))

	assert.Equal(t, "Year_End_Settlement_2024.csv", SettlementFilename(report.Settlement{TaxYear: "2024"}))
}
