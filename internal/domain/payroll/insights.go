package payroll

import (
	"math"

	"github.com/samber/lo"

	"gytax/internal/domain/ratetable"
)

// TaxSavings estimates the tax the reliefs in r avoid. Potential tax is the
// progressive tax on base salary plus taxable allowances with no relief at
// all, and each relief is valued at the marginal rate of that income.
func TaxSavings(r Result, rates ratetable.Payroll) Savings {
	untaxed := r.Input.BaseSalary + r.Input.TaxableAllowances
	threshold := r.FrequencyConfig.TaxThreshold

	marginal := rates.Tax.LowerRate
	if untaxed > threshold {
		marginal = rates.Tax.UpperRate
	}

	return Savings{
		PotentialTax:      progressiveTax(untaxed, threshold, rates.Tax),
		MarginalRate:      marginal,
		PersonalAllowance: r.PersonalAllowance * marginal,
		ChildAllowance:    r.ChildAllowance * marginal,
		Insurance:         r.InsuranceDeduction * marginal,
		Contribution:      r.Contribution * marginal,
		ActualTax:         r.IncomeTax,
	}
}

// Projections compares gross and net pay for a regular month, the two
// gratuity months and the whole year. Month rows are in monthly terms
// whatever the payment frequency.
func Projections(r Result) []Projection {
	vacation := r.Input.VacationAllowance
	rows := []Projection{
		{Label: ProjectionRegular, Gross: r.MonthlyGrossIncome, Net: r.MonthlyNetPay},
		{Label: ProjectionMonthSix, Gross: r.MonthlyGrossIncome + r.SixMonthGratuity, Net: r.MonthSixTotal},
		{Label: ProjectionMonthTwelve, Gross: r.MonthlyGrossIncome + r.SixMonthGratuity + vacation, Net: r.MonthTwelveTotal},
		{Label: ProjectionAnnual, Gross: r.AnnualGross + r.AnnualGratuity + vacation, Net: r.AnnualTotal},
	}
	for i := range rows {
		rows[i].Retention = retention(rows[i].Net, rows[i].Gross)
	}
	return rows
}

// Composition splits the period's pay into its components with each share
// as a whole percentage of the total.
func Composition(r Result) []Slice {
	slices := []Slice{
		{Label: SliceBase, Amount: r.Input.BaseSalary},
		{Label: SliceTaxable, Amount: r.Input.TaxableAllowances},
		{Label: SliceNonTaxable, Amount: r.NonTaxableAllowances},
		{Label: SliceGratuity, Amount: r.MonthlyGratuityAccrual},
	}
	total := lo.SumBy(slices, func(s Slice) float64 { return s.Amount })
	if total <= 0 {
		return slices
	}
	for i := range slices {
		slices[i].Share = math.Round(slices[i].Amount / total * 100)
	}
	return slices
}

// CashFlow lays out twelve months of net pay with gratuity paid in months 6
// and 12 and the vacation allowance in month 12.
func CashFlow(r Result) []float64 {
	months := make([]float64, 12)
	for i := range months {
		months[i] = r.MonthlyNetPay
	}
	months[5] += r.SixMonthGratuity
	months[11] += r.SixMonthGratuity + r.Input.VacationAllowance
	return months
}

// Analyze runs the engine and derives every display figure from the result.
func Analyze(in Input, rates ratetable.Payroll) Calculation {
	r := ComputePayroll(in, rates)
	return Calculation{
		Result:      r,
		Savings:     TaxSavings(r, rates),
		Projections: Projections(r),
		Composition: Composition(r),
		CashFlow:    CashFlow(r),
	}
}

func retention(net, gross float64) float64 {
	if gross == 0 {
		return 0
	}
	return math.Round(net / gross * 100)
}
