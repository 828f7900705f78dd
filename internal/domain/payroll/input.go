package payroll

import (
	"github.com/samber/lo"

	"gytax/internal/domain/ratetable"
	"gytax/internal/form"
)

// ParseInput builds an Input from raw form values. Each field is defaulted
// exactly once here so the engine never sees a missing value.
func ParseInput(v form.Values) Input {
	in := Input{
		Position:             v.String(FieldPosition),
		Frequency:            ratetable.Frequency(v.String(FieldFrequency)),
		BaseSalary:           v.Float(FieldBaseSalary),
		TaxableAllowances:    itemized(v, FieldTaxableItems, FieldTaxable),
		NonTaxableAllowances: itemized(v, FieldNonTaxableItems, FieldNonTaxable),
		VacationAllowance:    v.Float(FieldVacation),
		Qualification:        ratetable.QualificationTier(v.String(FieldQualification)),
		OvertimeIncome:       v.Float(FieldOvertime),
		SecondJobIncome:      v.Float(FieldSecondJob),
		Children:             v.Int(FieldChildren),
		LoanPayment:          v.Float(FieldLoanPayment),
		OtherDeduction:       v.Float(FieldOtherDeduction),
		InsurancePlan:        ratetable.InsurancePlan(v.String(FieldInsurancePlan)),
		CustomPremium:        v.Float(FieldCustomPremium),
		GratuityRate:         v.Float(FieldGratuityRate),
		GratuityPeriod:       v.Int(FieldGratuityPeriod),
	}

	if !ratetable.IsFrequency(string(in.Frequency)) {
		in.Frequency = ratetable.DefaultFrequency
	}
	if !ratetable.IsQualificationTier(string(in.Qualification)) {
		in.Qualification = ratetable.QualificationNone
	}
	if !ratetable.IsInsurancePlan(string(in.InsurancePlan)) {
		in.InsurancePlan = ratetable.InsuranceNone
	}
	if in.GratuityRate == 0 {
		in.GratuityRate = DefaultGratuityRate
	}
	if in.GratuityPeriod == 0 {
		in.GratuityPeriod = DefaultGratuityPeriod
	}
	return in
}

// itemized sums the itemized list when one is supplied, otherwise it reads
// the single total field.
func itemized(v form.Values, itemsKey, totalKey string) float64 {
	if items, ok := v.Floats(itemsKey); ok {
		return lo.Sum(items)
	}
	return v.Float(totalKey)
}
