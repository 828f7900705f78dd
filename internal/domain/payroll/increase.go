package payroll

import "gytax/internal/domain/ratetable"

// CompareIncrease recomputes in with the base salary raised by percent and
// reports the change in the headline figures.
func CompareIncrease(in Input, percent float64, rates ratetable.Payroll) Increase {
	before := ComputePayroll(in, rates)

	raised := in
	raised.BaseSalary = in.BaseSalary * (1 + percent/100)
	after := ComputePayroll(raised, rates)

	return Increase{
		Percent:                percent,
		Before:                 before,
		After:                  after,
		BaseSalaryChange:       after.Input.BaseSalary - before.Input.BaseSalary,
		NetPayChange:           after.NetPay - before.NetPay,
		MonthlyNetPayChange:    after.MonthlyNetPay - before.MonthlyNetPay,
		IncomeTaxChange:        after.IncomeTax - before.IncomeTax,
		SixMonthGratuityChange: after.SixMonthGratuity - before.SixMonthGratuity,
		AnnualTotalChange:      after.AnnualTotal - before.AnnualTotal,
	}
}
