package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
)

func buildTestPayroll(t *testing.T, salaries map[string]float64, order []string) *payroll.Payroll {
	t.Helper()
	employees := make([]payroll.Employee, 0, len(order))
	for _, name := range order {
		employees = append(employees, mustEmployee(t, name+"-id", name, salaries[name]))
	}
	p, err := payroll.BuildPayroll(employees, "202404", bonus50, loan20)
	require.NoError(t, err)
	return p
}

func TestSummarize_TwoEmployeeScenario(t *testing.T) {
	// GIVEN: Payroll over Ana (800) and Luis (1200)
	// THEN: count 2, net 1871, avg salary 1000, one high salary,
	//       max net Luis (1116.6), min net Ana (754.4)

	p := buildTestPayroll(t, map[string]float64{"Ana": 800, "Luis": 1200}, []string{"Ana", "Luis"})

	s := payroll.Summarize(p.LineItems)

	assert.Equal(t, 2, s.EmployeeCount)
	assertDecimal(t, "1871", s.TotalNetPaid)
	assertDecimal(t, "1000", s.AverageSalary)
	assert.Equal(t, 1, s.HighSalaryCount)
	assert.Equal(t, "Luis", s.MaxNetEmployee)
	assertDecimal(t, "1116.6", s.MaxNetValue)
	assert.Equal(t, "Ana", s.MinNetEmployee)
	assertDecimal(t, "754.4", s.MinNetValue)
}

func TestSummarize_EmptyInput_ZeroSummary(t *testing.T) {
	// The one place an empty set is tolerated: everything zero, names unset.
	s := payroll.Summarize(nil)

	assert.Equal(t, 0, s.EmployeeCount)
	assert.True(t, s.TotalNetPaid.IsZero())
	assert.True(t, s.AverageSalary.IsZero())
	assert.Equal(t, 0, s.HighSalaryCount)
	assert.Empty(t, s.MaxNetEmployee)
	assert.Empty(t, s.MinNetEmployee)
	assert.True(t, s.MaxNetValue.IsZero())
	assert.True(t, s.MinNetValue.IsZero())
}

func TestSummarize_HighSalaryThreshold_IsStrict(t *testing.T) {
	// Exactly 1000 does not count; 1000.01 does.
	p := buildTestPayroll(t, map[string]float64{"Eq": 1000, "Above": 1000.01}, []string{"Eq", "Above"})

	s := payroll.Summarize(p.LineItems)
	assert.Equal(t, 1, s.HighSalaryCount)
}

func TestSummarize_Ties_GoToFirstOccurrence(t *testing.T) {
	// GIVEN: Three employees with identical salaries (identical net pay)
	// THEN: Both extremes name the first in input order

	p := buildTestPayroll(t, map[string]float64{"First": 900, "Second": 900, "Third": 900},
		[]string{"First", "Second", "Third"})

	s := payroll.Summarize(p.LineItems)
	assert.Equal(t, "First", s.MaxNetEmployee)
	assert.Equal(t, "First", s.MinNetEmployee)
	assert.True(t, s.MaxNetValue.Equal(s.MinNetValue))
}

func TestSummarize_AverageSalary_RoundedToTwoDecimals(t *testing.T) {
	// (100 + 100 + 101) / 3 = 100.333... -> 100.33
	p := buildTestPayroll(t, map[string]float64{"A": 100, "B": 100, "C": 101}, []string{"A", "B", "C"})

	s := payroll.Summarize(p.LineItems)
	assertDecimal(t, "100.33", s.AverageSalary)
}
