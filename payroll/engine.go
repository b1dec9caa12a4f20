/*
engine.go - Payroll calculation engine

PURPOSE:
  Pure computation from employee data to payroll figures. No I/O.

DEDUCTION RULES:
  grossIncome     = baseSalary + bonus
  socialSecurity  = RoundBank(baseSalary * 0.0945, 2)
  totalDeductions = socialSecurity + loan
  netPay          = grossIncome - totalDeductions

  Only the social-security contribution is rounded (half to even, two
  decimals). The other fields are computed from already-rounded inputs
  and inherit whatever precision results.

SEE ALSO:
  - summary.go: Statistics over the line items built here
*/
package payroll

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoEmployees is returned when a payroll run is attempted with zero
// employees in storage.
var ErrNoEmployees = errors.New("no employees registered")

// ComputeLineItem derives one employee's payroll figures. bonus and
// loan are the fixed per-run constants, applied uniformly.
func ComputeLineItem(e Employee, sequenceID int, bonus, loan decimal.Decimal) LineItem {
	gross := e.BaseSalary.Add(bonus)
	socialSecurity := e.BaseSalary.Mul(SocialSecurityRate).RoundBank(2)
	deductions := socialSecurity.Add(loan)

	return LineItem{
		SequenceID:      sequenceID,
		Employee:        e,
		BaseSalary:      e.BaseSalary,
		Bonus:           bonus,
		GrossIncome:     gross,
		SocialSecurity:  socialSecurity,
		Loan:            loan,
		TotalDeductions: deductions,
		NetPay:          gross.Sub(deductions),
	}
}

// BuildPayroll computes a payroll over the employees in listing order.
// Sequence ids are assigned 1..N per run and the payroll id is the
// constant 1: every run produces the same identifier. That is the
// observed contract, not an auto-increment waiting to happen.
func BuildPayroll(employees []Employee, period string, bonus, loan decimal.Decimal) (*Payroll, error) {
	if len(employees) == 0 {
		return nil, ErrNoEmployees
	}

	p := &Payroll{ID: 1, Period: period}
	for i, e := range employees {
		item := ComputeLineItem(e, i+1, bonus, loan)
		p.LineItems = append(p.LineItems, item)
		p.TotalIncome = p.TotalIncome.Add(item.GrossIncome)
		p.TotalDeductions = p.TotalDeductions.Add(item.TotalDeductions)
	}
	p.NetTotal = p.TotalIncome.Sub(p.TotalDeductions)
	return p, nil
}
