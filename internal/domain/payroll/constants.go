package payroll

const (
	// DefaultGratuityRate applies when no gratuity rate is supplied.
	DefaultGratuityRate = 22.5
	// DefaultGratuityPeriod is collected for display only. The lump sum is
	// always six months of accrual paid at month 6 and month 12.
	DefaultGratuityPeriod = 6

	gratuityAccrualMonths   = 6
	gratuityPaymentsPerYear = 2
)

// Form field names accepted by ParseInput.
const (
	FieldPosition        = "position"
	FieldFrequency       = "frequency"
	FieldBaseSalary      = "baseSalary"
	FieldTaxable         = "taxableAllowances"
	FieldTaxableItems    = "taxableItems"
	FieldNonTaxable      = "nonTaxableAllowances"
	FieldNonTaxableItems = "nonTaxableItems"
	FieldVacation        = "vacationAllowance"
	FieldQualification   = "qualification"
	FieldOvertime        = "overtimeIncome"
	FieldSecondJob       = "secondJobIncome"
	FieldChildren        = "children"
	FieldLoanPayment     = "loanPayment"
	FieldOtherDeduction  = "otherDeduction"
	FieldInsurancePlan   = "insurancePlan"
	FieldCustomPremium   = "customPremium"
	FieldGratuityRate    = "gratuityRate"
	FieldGratuityPeriod  = "gratuityPeriod"
)

const (
	ProjectionRegular     = "Regular Month"
	ProjectionMonthSix    = "Month 6"
	ProjectionMonthTwelve = "Month 12"
	ProjectionAnnual      = "Annual"

	SliceBase       = "Basic Salary"
	SliceTaxable    = "Taxable Allowances"
	SliceNonTaxable = "Non-Taxable Allowances"
	SliceGratuity   = "Gratuity"
)
