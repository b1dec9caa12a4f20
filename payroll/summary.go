/*
summary.go - Statistics over a payroll's line items

PURPOSE:
  A standalone pure function from line items to summary figures. It
  never mutates its input and holds no reference back to the payroll.

EMPTY INPUT:
  Summarize tolerates an empty set and returns a zero-valued summary
  with the name fields unset. This is deliberate and distinct from
  BuildPayroll, which rejects an empty employee set upstream.
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// Summarize derives the summary statistics for a set of line items.
// Max/min ties go to the first occurrence in input order.
func Summarize(items []LineItem) Summary {
	if len(items) == 0 {
		return Summary{}
	}

	s := Summary{EmployeeCount: len(items)}

	var salarySum decimal.Decimal
	maxIdx, minIdx := 0, 0
	for i, item := range items {
		s.TotalNetPaid = s.TotalNetPaid.Add(item.NetPay)
		salarySum = salarySum.Add(item.BaseSalary)
		if item.BaseSalary.GreaterThan(HighSalaryThreshold) {
			s.HighSalaryCount++
		}
		if item.NetPay.GreaterThan(items[maxIdx].NetPay) {
			maxIdx = i
		}
		if item.NetPay.LessThan(items[minIdx].NetPay) {
			minIdx = i
		}
	}

	count := decimal.NewFromInt(int64(len(items)))
	s.AverageSalary = salarySum.Div(count).RoundBank(2)

	s.MaxNetEmployee = items[maxIdx].Employee.Name
	s.MaxNetValue = items[maxIdx].NetPay
	s.MinNetEmployee = items[minIdx].Employee.Name
	s.MinNetValue = items[minIdx].NetPay
	return s
}
