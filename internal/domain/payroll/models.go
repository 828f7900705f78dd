package payroll

import "gytax/internal/domain/ratetable"

// Input is one payroll calculation request, with every amount expressed in
// the selected payment frequency. VacationAllowance is the exception: it is
// an annual amount paid with month 12. CustomPremium is only read for the
// custom insurance plan.
type Input struct {
	Position             string                      `json:"position"`
	Frequency            ratetable.Frequency         `json:"frequency"`
	BaseSalary           float64                     `json:"baseSalary"`
	TaxableAllowances    float64                     `json:"taxableAllowances"`
	NonTaxableAllowances float64                     `json:"nonTaxableAllowances"`
	VacationAllowance    float64                     `json:"vacationAllowance"`
	Qualification        ratetable.QualificationTier `json:"qualification"`
	OvertimeIncome       float64                     `json:"overtimeIncome"`
	SecondJobIncome      float64                     `json:"secondJobIncome"`
	Children             int                         `json:"children"`
	LoanPayment          float64                     `json:"loanPayment"`
	OtherDeduction       float64                     `json:"otherDeduction"`
	InsurancePlan        ratetable.InsurancePlan     `json:"insurancePlan"`
	CustomPremium        float64                     `json:"customPremium"`
	GratuityRate         float64                     `json:"gratuityRate"`
	GratuityPeriod       int                         `json:"gratuityPeriod"`
}

// Result holds every derived payroll figure. Period figures are in the
// input's frequency; Monthly* and Annual* figures are converted.
type Result struct {
	Input                  Input                     `json:"input"`
	FrequencyConfig        ratetable.FrequencyConfig `json:"frequencyConfig"`
	MonthlyBaseSalary      float64                   `json:"monthlyBaseSalary"`
	QualificationAllowance float64                   `json:"qualificationAllowance"`
	NonTaxableAllowances   float64                   `json:"nonTaxableAllowances"`
	InsurancePremium       float64                   `json:"insurancePremium"`

	GrossIncome        float64 `json:"grossIncome"`
	TaxableBase        float64 `json:"taxableBase"`
	PersonalAllowance  float64 `json:"personalAllowance"`
	Contribution       float64 `json:"contribution"`
	ChildAllowance     float64 `json:"childAllowance"`
	OvertimeAllowance  float64 `json:"overtimeAllowance"`
	SecondJobAllowance float64 `json:"secondJobAllowance"`
	InsuranceDeduction float64 `json:"insuranceDeduction"`
	TaxableIncome      float64 `json:"taxableIncome"`
	IncomeTax          float64 `json:"incomeTax"`
	NetPay             float64 `json:"netPay"`

	MonthlyGrossIncome     float64 `json:"monthlyGrossIncome"`
	MonthlyNetPay          float64 `json:"monthlyNetPay"`
	MonthlyGratuityAccrual float64 `json:"monthlyGratuityAccrual"`
	SixMonthGratuity       float64 `json:"sixMonthGratuity"`
	MonthSixTotal          float64 `json:"monthSixTotal"`
	MonthTwelveTotal       float64 `json:"monthTwelveTotal"`

	AnnualGross        float64 `json:"annualGross"`
	AnnualContribution float64 `json:"annualContribution"`
	AnnualTax          float64 `json:"annualTax"`
	AnnualNet          float64 `json:"annualNet"`
	AnnualGratuity     float64 `json:"annualGratuity"`
	AnnualTotal        float64 `json:"annualTotal"`
}

// Increase compares a calculation before and after a base salary increase.
type Increase struct {
	Percent float64 `json:"percent"`
	Before  Result  `json:"before"`
	After   Result  `json:"after"`

	BaseSalaryChange       float64 `json:"baseSalaryChange"`
	NetPayChange           float64 `json:"netPayChange"`
	MonthlyNetPayChange    float64 `json:"monthlyNetPayChange"`
	IncomeTaxChange        float64 `json:"incomeTaxChange"`
	SixMonthGratuityChange float64 `json:"sixMonthGratuityChange"`
	AnnualTotalChange      float64 `json:"annualTotalChange"`
}

// Savings values each relief at the marginal rate of the untaxed income.
type Savings struct {
	PotentialTax      float64 `json:"potentialTax"`
	MarginalRate      float64 `json:"marginalRate"`
	PersonalAllowance float64 `json:"personalAllowance"`
	ChildAllowance    float64 `json:"childAllowance"`
	Insurance         float64 `json:"insurance"`
	Contribution      float64 `json:"contribution"`
	ActualTax         float64 `json:"actualTax"`
}

// Projection compares gross and net for one point in the pay year.
// Retention is net as a whole percentage of gross.
type Projection struct {
	Label     string  `json:"label"`
	Gross     float64 `json:"gross"`
	Net       float64 `json:"net"`
	Retention float64 `json:"retention"`
}

type Slice struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Share  float64 `json:"share"`
}

// Calculation bundles a result with the figures derived from it for display.
type Calculation struct {
	Result      Result       `json:"result"`
	Savings     Savings      `json:"savings"`
	Projections []Projection `json:"projections"`
	Composition []Slice      `json:"composition"`
	CashFlow    []float64    `json:"cashFlow"`
}

type FrequencyOption struct {
	ID          ratetable.Frequency `json:"id"`
	Label       string              `json:"label"`
	PeriodLabel string              `json:"periodLabel"`
}
