package payroll

import (
	"math"

	"gytax/internal/domain/ratetable"
)

// ComputePayroll derives take-home pay, gratuity and annual totals for one
// input against one fiscal year's payroll rates. It is pure and total:
// negative amounts are treated as zero and unknown enumerations fall back to
// their defaults.
func ComputePayroll(in Input, rates ratetable.Payroll) Result {
	in = normalize(in)
	cfg := rates.Frequency(in.Frequency)

	r := Result{Input: in, FrequencyConfig: cfg}

	r.MonthlyBaseSalary = cfg.ToMonthly(in.BaseSalary)
	r.MonthlyGratuityAccrual = r.MonthlyBaseSalary * (in.GratuityRate / 100)
	r.SixMonthGratuity = r.MonthlyGratuityAccrual * gratuityAccrualMonths

	r.QualificationAllowance = rates.Qualification(in.Frequency, in.Qualification)
	r.NonTaxableAllowances = in.NonTaxableAllowances + r.QualificationAllowance
	r.InsurancePremium = premiumForPeriod(in, rates, cfg)

	r.GrossIncome = in.BaseSalary + in.TaxableAllowances + r.NonTaxableAllowances +
		in.OvertimeIncome + in.SecondJobIncome

	r.PersonalAllowance = math.Max(cfg.PersonalAllowance, r.GrossIncome/3)
	r.Contribution = math.Min(r.GrossIncome*cfg.ContributionRate, cfg.ContributionCeiling*cfg.ContributionRate)
	r.ChildAllowance = float64(in.Children) * cfg.ChildAllowance
	r.OvertimeAllowance = math.Min(in.OvertimeIncome, cfg.OvertimeMax)
	r.SecondJobAllowance = math.Min(in.SecondJobIncome, cfg.SecondJobMax)
	r.InsuranceDeduction = math.Min(r.InsurancePremium, math.Min(r.GrossIncome*rates.InsuranceGrossShare, cfg.InsuranceMax))

	r.TaxableBase = r.GrossIncome - r.NonTaxableAllowances - r.OvertimeAllowance - r.SecondJobAllowance
	r.TaxableIncome = math.Max(0, r.TaxableBase-r.PersonalAllowance-r.Contribution-r.ChildAllowance-r.InsuranceDeduction)
	r.IncomeTax = progressiveTax(r.TaxableIncome, cfg.TaxThreshold, rates.Tax)

	r.NetPay = r.GrossIncome - r.Contribution - r.IncomeTax - in.LoanPayment - in.OtherDeduction

	r.MonthlyGrossIncome = cfg.ToMonthly(r.GrossIncome)
	r.MonthlyNetPay = cfg.ToMonthly(r.NetPay)
	r.MonthSixTotal = r.MonthlyNetPay + r.SixMonthGratuity
	r.MonthTwelveTotal = r.MonthlyNetPay + r.SixMonthGratuity + in.VacationAllowance

	r.AnnualGross = r.GrossIncome * cfg.PeriodsPerYear
	r.AnnualContribution = r.Contribution * cfg.PeriodsPerYear
	r.AnnualTax = r.IncomeTax * cfg.PeriodsPerYear
	r.AnnualNet = r.NetPay * cfg.PeriodsPerYear
	r.AnnualGratuity = r.SixMonthGratuity * gratuityPaymentsPerYear
	r.AnnualTotal = r.AnnualNet + r.AnnualGratuity + in.VacationAllowance

	return r
}

// progressiveTax applies the lower rate up to threshold and the upper rate
// above it.
func progressiveTax(taxable, threshold float64, tax ratetable.IncomeTax) float64 {
	if taxable <= threshold {
		return taxable * tax.LowerRate
	}
	return threshold*tax.LowerRate + (taxable-threshold)*tax.UpperRate
}

func premiumForPeriod(in Input, rates ratetable.Payroll, cfg ratetable.FrequencyConfig) float64 {
	if in.InsurancePlan == ratetable.InsuranceCustom {
		return in.CustomPremium
	}
	return cfg.FromMonthly(rates.Premium(in.InsurancePlan))
}

func normalize(in Input) Input {
	if !ratetable.IsFrequency(string(in.Frequency)) {
		in.Frequency = ratetable.DefaultFrequency
	}
	if !ratetable.IsQualificationTier(string(in.Qualification)) {
		in.Qualification = ratetable.QualificationNone
	}
	if !ratetable.IsInsurancePlan(string(in.InsurancePlan)) {
		in.InsurancePlan = ratetable.InsuranceNone
	}
	for _, amount := range []*float64{
		&in.BaseSalary, &in.TaxableAllowances, &in.NonTaxableAllowances,
		&in.VacationAllowance, &in.OvertimeIncome, &in.SecondJobIncome,
		&in.LoanPayment, &in.OtherDeduction, &in.CustomPremium, &in.GratuityRate,
	} {
		*amount = nonNegative(*amount)
	}
	in.Children = max(in.Children, 0)
	in.GratuityPeriod = max(in.GratuityPeriod, 0)
	return in
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
