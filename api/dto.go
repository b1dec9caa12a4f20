/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done by the domain constructor, not in DTOs. DTOs are
  pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

func dec(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// =============================================================================
// EMPLOYEE TYPES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	Cedula     string  `json:"cedula"`
	Name       string  `json:"name"`
	Salary     float64 `json:"salary"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	Cedula     string  `json:"cedula"`
	Name       string  `json:"name"`
	Salary     float64 `json:"salary"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
}

// UpdateEmployeeRequest carries full replacement values for an
// employee; the cedula comes from the URL.
type UpdateEmployeeRequest struct {
	Name       string  `json:"name"`
	Salary     float64 `json:"salary"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
}

// =============================================================================
// PAYROLL TYPES
// =============================================================================

// RunPayrollRequest is the request to run a monthly payroll. An empty
// period defaults to the current year-month.
type RunPayrollRequest struct {
	Period string `json:"period,omitempty"`
}

// LineItemDTO represents one employee's payroll figures.
type LineItemDTO struct {
	ID              int     `json:"id"`
	Employee        string  `json:"employee"`
	Cedula          string  `json:"cedula"`
	Salary          float64 `json:"salary"`
	Bonus           float64 `json:"bonus"`
	GrossIncome     float64 `json:"gross_income"`
	SocialSecurity  float64 `json:"social_security"`
	Loan            float64 `json:"loan"`
	TotalDeductions float64 `json:"total_deductions"`
	NetPay          float64 `json:"net_pay"`
}

// PayrollDTO represents one payroll run.
type PayrollDTO struct {
	ID              int           `json:"id"`
	Period          string        `json:"period"`
	TotalIncome     float64       `json:"total_income"`
	TotalDeductions float64       `json:"total_deductions"`
	NetTotal        float64       `json:"net_total"`
	LineItems       []LineItemDTO `json:"line_items"`
}

// SummaryDTO represents the payroll statistics.
type SummaryDTO struct {
	EmployeeCount   int     `json:"employee_count"`
	TotalNetPaid    float64 `json:"total_net_paid"`
	AverageSalary   float64 `json:"average_salary"`
	HighSalaryCount int     `json:"high_salary_count"`
	MaxNetEmployee  string  `json:"max_net_employee,omitempty"`
	MinNetEmployee  string  `json:"min_net_employee,omitempty"`
	MaxNetValue     float64 `json:"max_net_value"`
	MinNetValue     float64 `json:"min_net_value"`
}

// RunPayrollResponse bundles one payroll run's outputs.
type RunPayrollResponse struct {
	Payroll      PayrollDTO `json:"payroll"`
	Summary      SummaryDTO `json:"summary"`
	ArtifactPath string     `json:"artifact_path"`
	ReportPath   string     `json:"report_path"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toEmployeeDTO(e payroll.Employee) EmployeeDTO {
	salary, _ := e.BaseSalary.Float64()
	return EmployeeDTO{
		Cedula:     e.ID,
		Name:       e.Name,
		Salary:     salary,
		Department: e.Department,
		Role:       e.Role,
	}
}

func toPayrollDTO(p *payroll.Payroll) PayrollDTO {
	dto := PayrollDTO{
		ID:              p.ID,
		Period:          p.Period,
		TotalIncome:     dec(p.TotalIncome),
		TotalDeductions: dec(p.TotalDeductions),
		NetTotal:        dec(p.NetTotal),
		LineItems:       make([]LineItemDTO, 0, len(p.LineItems)),
	}
	for _, item := range p.LineItems {
		dto.LineItems = append(dto.LineItems, LineItemDTO{
			ID:              item.SequenceID,
			Employee:        item.Employee.Name,
			Cedula:          item.Employee.ID,
			Salary:          dec(item.BaseSalary),
			Bonus:           dec(item.Bonus),
			GrossIncome:     dec(item.GrossIncome),
			SocialSecurity:  dec(item.SocialSecurity),
			Loan:            dec(item.Loan),
			TotalDeductions: dec(item.TotalDeductions),
			NetPay:          dec(item.NetPay),
		})
	}
	return dto
}

func toSummaryDTO(s payroll.Summary) SummaryDTO {
	return SummaryDTO{
		EmployeeCount:   s.EmployeeCount,
		TotalNetPaid:    dec(s.TotalNetPaid),
		AverageSalary:   dec(s.AverageSalary),
		HighSalaryCount: s.HighSalaryCount,
		MaxNetEmployee:  s.MaxNetEmployee,
		MinNetEmployee:  s.MinNetEmployee,
		MaxNetValue:     dec(s.MaxNetValue),
		MinNetValue:     dec(s.MinNetValue),
	}
}
