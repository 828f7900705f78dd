package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gytax/internal/domain/ratetable"
)

func itOfficer() Input {
	in := monthly(247451)
	in.TaxableAllowances = 20000
	in.VacationAllowance = 267451
	return in
}

func TestApplyPresetConvertsToFrequency(t *testing.T) {
	rates := rates2026()
	preset, ok := rates.Preset("nurse-staff")
	require.True(t, ok)

	weekly := ApplyPreset(Input{Frequency: ratetable.FrequencyWeekly}, preset, rates.Frequency(ratetable.FrequencyWeekly))
	assert.Equal(t, "Staff Nurse", weekly.Position)
	assert.Equal(t, 50808.0, weekly.BaseSalary)
	assert.Equal(t, 5774.0, weekly.TaxableAllowances)
	assert.Equal(t, 3002.0, weekly.NonTaxableAllowances)
	assert.Equal(t, 258000.0, weekly.VacationAllowance)

	monthlyIn := ApplyPreset(Input{Frequency: ratetable.FrequencyMonthly}, preset, rates.Frequency(ratetable.FrequencyMonthly))
	assert.Equal(t, 220000.0, monthlyIn.BaseSalary)
	assert.Equal(t, 25000.0, monthlyIn.TaxableAllowances)
	assert.Equal(t, 13000.0, monthlyIn.NonTaxableAllowances)
}

func TestCompareIncreaseZeroPercent(t *testing.T) {
	inc := CompareIncrease(itOfficer(), 0, rates2026())

	assert.Zero(t, inc.BaseSalaryChange)
	assert.Zero(t, inc.NetPayChange)
	assert.Zero(t, inc.IncomeTaxChange)
	assert.Zero(t, inc.SixMonthGratuityChange)
	assert.Zero(t, inc.AnnualTotalChange)
	assert.Equal(t, inc.Before, inc.After)
}

func TestCompareIncreaseTenPercent(t *testing.T) {
	inc := CompareIncrease(itOfficer(), 10, rates2026())

	assert.InDelta(t, 24745.1, inc.BaseSalaryChange, delta)
	assert.InDelta(t, 24745.1*0.225*6, inc.SixMonthGratuityChange, delta)
	assert.Greater(t, inc.NetPayChange, 0.0)
	assert.Less(t, inc.NetPayChange, inc.BaseSalaryChange)
	assert.Greater(t, inc.IncomeTaxChange, 0.0)
	assert.InDelta(t, inc.After.AnnualTotal-inc.Before.AnnualTotal, inc.AnnualTotalChange, delta)
}

func TestTaxSavings(t *testing.T) {
	r := ComputePayroll(itOfficer(), rates2026())
	s := TaxSavings(r, rates2026())

	assert.Equal(t, 0.35, s.MarginalRate)
	assert.InDelta(t, 65000+7451*0.35, s.PotentialTax, delta)
	assert.InDelta(t, 140000*0.35, s.PersonalAllowance, delta)
	assert.InDelta(t, r.Contribution*0.35, s.Contribution, delta)
	assert.Zero(t, s.ChildAllowance)
	assert.Zero(t, s.Insurance)
	assert.Equal(t, r.IncomeTax, s.ActualTax)

	low := TaxSavings(ComputePayroll(monthly(100000), rates2026()), rates2026())
	assert.Equal(t, 0.25, low.MarginalRate)
}

func TestProjections(t *testing.T) {
	r := ComputePayroll(itOfficer(), rates2026())
	rows := Projections(r)
	require.Len(t, rows, 4)

	assert.Equal(t, ProjectionRegular, rows[0].Label)
	assert.InDelta(t, 267451, rows[0].Gross, delta)
	assert.InDelta(t, r.MonthlyNetPay, rows[0].Net, delta)
	assert.Equal(t, 84.0, rows[0].Retention)

	assert.InDelta(t, 267451+r.SixMonthGratuity, rows[1].Gross, delta)
	assert.InDelta(t, r.MonthSixTotal, rows[1].Net, delta)
	assert.InDelta(t, 267451, rows[2].Net-rows[1].Net, delta)
	assert.InDelta(t, r.AnnualGross+2*r.SixMonthGratuity+267451, rows[3].Gross, delta)
	assert.InDelta(t, r.AnnualTotal, rows[3].Net, delta)
}

func TestProjectionsUseMonthlyTermsForWeeklyPay(t *testing.T) {
	in := itOfficer()
	in.Frequency = ratetable.FrequencyWeekly
	in.BaseSalary = 57000
	in.TaxableAllowances = 0
	r := ComputePayroll(in, rates2026())

	rows := Projections(r)
	assert.InDelta(t, r.MonthlyGrossIncome, rows[0].Gross, delta)
	assert.InDelta(t, r.MonthlyNetPay, rows[0].Net, delta)
	for _, row := range rows {
		assert.LessOrEqual(t, row.Retention, 100.0, row.Label)
	}
}

func TestProjectionsZeroGross(t *testing.T) {
	for _, row := range Projections(ComputePayroll(Input{}, rates2026())) {
		assert.Zero(t, row.Retention)
	}
}

func TestComposition(t *testing.T) {
	r := ComputePayroll(itOfficer(), rates2026())
	slices := Composition(r)
	require.Len(t, slices, 4)

	assert.Equal(t, SliceBase, slices[0].Label)
	assert.Equal(t, 247451.0, slices[0].Amount)
	assert.InDelta(t, 55676.475, slices[3].Amount, delta)
	assert.Equal(t, 77.0, slices[0].Share)
	assert.Equal(t, 6.0, slices[1].Share)
	assert.Zero(t, slices[2].Share)
	assert.Equal(t, 17.0, slices[3].Share)

	for _, s := range Composition(ComputePayroll(Input{}, rates2026())) {
		assert.Zero(t, s.Share)
	}
}

func TestCashFlow(t *testing.T) {
	r := ComputePayroll(itOfficer(), rates2026())
	months := CashFlow(r)
	require.Len(t, months, 12)

	assert.InDelta(t, r.MonthlyNetPay, months[0], delta)
	assert.InDelta(t, r.MonthSixTotal, months[5], delta)
	assert.InDelta(t, r.MonthTwelveTotal, months[11], delta)
}

func TestAnalyzeBundlesFigures(t *testing.T) {
	calc := Analyze(itOfficer(), rates2026())

	assert.Equal(t, ComputePayroll(itOfficer(), rates2026()), calc.Result)
	assert.Len(t, calc.Projections, 4)
	assert.Len(t, calc.Composition, 4)
	assert.Len(t, calc.CashFlow, 12)
}
