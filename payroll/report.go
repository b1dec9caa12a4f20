// report.go - PDF payslip report for one payroll run.
//
// One payslip page per line item plus a totals page, written beside the
// JSON artifact as payslips_<period>.pdf. Full overwrite per run.
package payroll

import (
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// WritePayslipReport renders the payroll as a PDF payslip report and
// returns the file path.
func (s *Service) WritePayslipReport(p *Payroll) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	for _, item := range p.LineItems {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(40, 10, "Payslip")
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", item.Employee.Name))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Cedula: %s", item.Employee.ID))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Department: %s / %s", item.Employee.Department, item.Employee.Role))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Period: %s", p.Period))
		pdf.Ln(10)
		pdf.Cell(0, 8, fmt.Sprintf("Base salary: %s", item.BaseSalary.StringFixed(2)))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Bonus: %s", item.Bonus.StringFixed(2)))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Gross income: %s", item.GrossIncome.StringFixed(2)))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Social security (IESS): %s", item.SocialSecurity.StringFixed(2)))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Loan: %s", item.Loan.StringFixed(2)))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %s", item.TotalDeductions.StringFixed(2)))
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Net pay: %s", item.NetPay.StringFixed(2)))
	}

	// Totals page
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Payroll %s", p.Period))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employees: %d", len(p.LineItems)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total income: %s", p.TotalIncome.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %s", p.TotalDeductions.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net total: %s", p.NetTotal.StringFixed(2)))

	path := filepath.Join(s.OutDir, fmt.Sprintf("payslips_%s.pdf", p.Period))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
