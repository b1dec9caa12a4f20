/*
service.go - Payroll orchestration service

PURPOSE:
  Composes the repository, the calculation engine, and the summary
  generator: pull all employees, build the payroll, persist the
  period-named artifact, derive the summary. This is the only place
  that touches both storage and computation in one call.

ARTIFACT:
  One JSON file per period, nomina_<period>.json, written as a full
  overwrite. Field names follow the cedula/aniomes wire format of the
  employee snapshot. A PDF payslip report is written beside it.

OPERATION LOGGING:
  Mutation-scale operations are wrapped with start/completion log
  lines via logged(), composed explicitly at the call site.

SEE ALSO:
  - engine.go:  BuildPayroll
  - summary.go: Summarize
  - report.go:  PDF payslip report
*/
package payroll

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/generic"
)

// Service orchestrates payroll runs over an employee repository.
type Service struct {
	Repo   *generic.Repository[Employee]
	OutDir string

	// Per-run constants, applied uniformly to every employee.
	Bonus decimal.Decimal
	Loan  decimal.Decimal
}

// NewService creates a service with the default bonus and loan constants.
func NewService(repo *generic.Repository[Employee], outDir string) *Service {
	return &Service{
		Repo:   repo,
		OutDir: outDir,
		Bonus:  DefaultBonus,
		Loan:   DefaultLoan,
	}
}

// RunResult bundles everything one payroll run produces.
type RunResult struct {
	Payroll      *Payroll
	Summary      Summary
	ArtifactPath string
	ReportPath   string
}

// CurrentPeriod derives the default period label from the clock.
func CurrentPeriod() string {
	return time.Now().Format("200601")
}

// GenerateMonthlyPayroll lists every employee and builds the payroll.
// Fails with ErrNoEmployees when storage is empty.
func (s *Service) GenerateMonthlyPayroll(ctx context.Context, period string) (*Payroll, error) {
	employees, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildPayroll(employees, period, s.Bonus, s.Loan)
}

// PersistPayroll writes the period-named JSON artifact, overwriting any
// existing artifact for the same period. Returns the artifact path.
func (s *Service) PersistPayroll(p *Payroll) (string, error) {
	data, err := json.MarshalIndent(payrollToRecord(p), "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.OutDir, fmt.Sprintf("nomina_%s.json", p.Period))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	log.Printf("payroll saved to %s", path)
	return path, nil
}

// ProcessFullPayroll composes generation, persistence, the payslip
// report, and summary generation.
func (s *Service) ProcessFullPayroll(ctx context.Context, period string) (*RunResult, error) {
	return logged("process_full_payroll", func() (*RunResult, error) {
		p, err := s.GenerateMonthlyPayroll(ctx, period)
		if err != nil {
			return nil, err
		}

		artifactPath, err := s.PersistPayroll(p)
		if err != nil {
			return nil, err
		}

		reportPath, err := s.WritePayslipReport(p)
		if err != nil {
			return nil, err
		}

		return &RunResult{
			Payroll:      p,
			Summary:      Summarize(p.LineItems),
			ArtifactPath: artifactPath,
			ReportPath:   reportPath,
		}, nil
	})
}

// logged wraps an operation with start/completion log lines.
func logged[T any](name string, op func() (T, error)) (T, error) {
	log.Printf("running operation: %s", name)
	v, err := op()
	if err != nil {
		log.Printf("operation %s failed: %v", name, err)
		return v, err
	}
	log.Printf("operation %s completed", name)
	return v, nil
}

// =============================================================================
// ARTIFACT RECORDS
// =============================================================================

type payrollRecord struct {
	ID       int              `json:"id"`
	Aniomes  string           `json:"aniomes"`
	TotIng   float64          `json:"tot_ing"`
	TotDes   float64          `json:"tot_des"`
	Neto     float64          `json:"neto"`
	Detalles []lineItemRecord `json:"detalles"`
}

type lineItemRecord struct {
	ID       int     `json:"id"`
	Empleado string  `json:"empleado"`
	Cedula   string  `json:"cedula"`
	Sueldo   float64 `json:"sueldo"`
	Bono     float64 `json:"bono"`
	TotIng   float64 `json:"tot_ing"`
	Iess     float64 `json:"iess"`
	Prestamo float64 `json:"prestamo"`
	TotDes   float64 `json:"tot_des"`
	Neto     float64 `json:"neto"`
}

func payrollToRecord(p *Payroll) payrollRecord {
	rec := payrollRecord{
		ID:       p.ID,
		Aniomes:  p.Period,
		TotIng:   toFloat(p.TotalIncome),
		TotDes:   toFloat(p.TotalDeductions),
		Neto:     toFloat(p.NetTotal),
		Detalles: make([]lineItemRecord, 0, len(p.LineItems)),
	}
	for _, item := range p.LineItems {
		rec.Detalles = append(rec.Detalles, lineItemRecord{
			ID:       item.SequenceID,
			Empleado: item.Employee.Name,
			Cedula:   item.Employee.ID,
			Sueldo:   toFloat(item.BaseSalary),
			Bono:     toFloat(item.Bonus),
			TotIng:   toFloat(item.GrossIncome),
			Iess:     toFloat(item.SocialSecurity),
			Prestamo: toFloat(item.Loan),
			TotDes:   toFloat(item.TotalDeductions),
			Neto:     toFloat(item.NetPay),
		})
	}
	return rec
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
