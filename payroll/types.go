/*
Package payroll manages employee records and computes monthly payrolls.

PURPOSE:
  This package contains the domain model and the pure computation that
  turns employee records into a payroll: per-employee line items under
  fixed deduction rules, run-level aggregates, and summary statistics.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee:  Immutable record keyed by cedula (national identifier)
  - LineItem:  Derived per-employee figures for one payroll run
  - Payroll:   One run for a period, line items plus aggregates
  - Summary:   Derived statistics over a payroll's line items

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors.
     RoundBank gives the round-half-to-even the deduction rules require.
  2. Immutability: Derived fields are computed once, never mutated.
  3. Purity: Engine and summary are pure functions over in-memory data;
     only the repository and the service's artifact writer touch disk.

SEE ALSO:
  - engine.go:   Line-item computation and payroll assembly
  - summary.go:  Statistics over line items
  - service.go:  Orchestration and artifact persistence
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// PAYROLL CONSTANTS
// =============================================================================

// SocialSecurityRate is the fixed IESS withholding rate applied to the
// base salary (9.45%).
var SocialSecurityRate = decimal.NewFromFloat(0.0945)

// HighSalaryThreshold is the strict lower bound for the summary's
// high-salary count.
var HighSalaryThreshold = decimal.NewFromInt(1000)

// Default per-run constants, applied uniformly to every employee.
var (
	DefaultBonus = decimal.NewFromFloat(50)
	DefaultLoan  = decimal.NewFromFloat(20)
)

// =============================================================================
// EMPLOYEE - The persisted entity
// =============================================================================

// Employee is an immutable employee record. Updates replace the whole
// record keyed by ID.
type Employee struct {
	ID         string // cedula, the unique national-identifier key
	Name       string
	BaseSalary decimal.Decimal
	Department string
	Role       string
}

// =============================================================================
// LINE ITEM - Derived per-employee figures for one run
// =============================================================================

// LineItem holds the computed payroll figures for one employee. The
// employee is captured by value, not a live link into storage. All
// derived fields are recomputed at build time, never mutated after.
type LineItem struct {
	SequenceID int // 1-based, assigned in listing order per run
	Employee   Employee

	BaseSalary      decimal.Decimal
	Bonus           decimal.Decimal
	GrossIncome     decimal.Decimal // BaseSalary + Bonus
	SocialSecurity  decimal.Decimal // RoundBank(BaseSalary * rate, 2)
	Loan            decimal.Decimal
	TotalDeductions decimal.Decimal // SocialSecurity + Loan
	NetPay          decimal.Decimal // GrossIncome - TotalDeductions
}

// =============================================================================
// PAYROLL - One run for a period
// =============================================================================

// Payroll is one payroll run. Aggregates are always recomputable from
// the line items.
type Payroll struct {
	ID        int    // fixed at 1 per run, see BuildPayroll
	Period    string // year-month label, e.g. "202404"
	LineItems []LineItem

	TotalIncome     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetTotal        decimal.Decimal
}

// =============================================================================
// SUMMARY - Statistics over a payroll's line items
// =============================================================================

// Summary is a pure projection over line items, never persisted.
type Summary struct {
	EmployeeCount   int
	TotalNetPaid    decimal.Decimal
	AverageSalary   decimal.Decimal // rounded to 2 decimals
	HighSalaryCount int             // BaseSalary > 1000, strict

	// Name fields stay empty for an empty input set.
	MaxNetEmployee string
	MinNetEmployee string
	MaxNetValue    decimal.Decimal
	MinNetValue    decimal.Decimal
}
