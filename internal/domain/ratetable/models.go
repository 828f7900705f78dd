package ratetable

type Frequency string

const (
	FrequencyDaily       Frequency = "daily"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyYearly      Frequency = "yearly"

	DefaultFrequency = FrequencyMonthly
)

// Frequencies lists every payment frequency in display order.
var Frequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyFortnightly,
	FrequencyMonthly,
	FrequencyYearly,
}

type QualificationTier string

const (
	QualificationNone    QualificationTier = "none"
	QualificationACCA    QualificationTier = "acca"
	QualificationMasters QualificationTier = "masters"
	QualificationPhD     QualificationTier = "phd"
)

var QualificationTiers = []QualificationTier{
	QualificationNone,
	QualificationACCA,
	QualificationMasters,
	QualificationPhD,
}

type InsurancePlan string

const (
	InsuranceNone        InsurancePlan = "none"
	InsuranceEmployee    InsurancePlan = "employee"
	InsuranceEmployeeOne InsurancePlan = "employee-one"
	InsuranceFamily      InsurancePlan = "family"
	// InsuranceCustom means the premium is supplied by the user and is never
	// looked up in the premium table.
	InsuranceCustom InsurancePlan = "custom"
)

var InsurancePlans = []InsurancePlan{
	InsuranceNone,
	InsuranceEmployee,
	InsuranceEmployeeOne,
	InsuranceFamily,
	InsuranceCustom,
}

// FrequencyConfig holds the statutory constants scaled to one payment
// frequency. Factor converts a monthly amount into this frequency.
type FrequencyConfig struct {
	Label               string  `json:"label" yaml:"label" mapstructure:"label"`
	PeriodLabel         string  `json:"periodLabel" yaml:"periodLabel" mapstructure:"periodLabel"`
	Factor              float64 `json:"factor" yaml:"factor" mapstructure:"factor"`
	PersonalAllowance   float64 `json:"personalAllowance" yaml:"personalAllowance" mapstructure:"personalAllowance"`
	TaxThreshold        float64 `json:"taxThreshold" yaml:"taxThreshold" mapstructure:"taxThreshold"`
	ContributionRate    float64 `json:"contributionRate" yaml:"contributionRate" mapstructure:"contributionRate"`
	ContributionCeiling float64 `json:"contributionCeiling" yaml:"contributionCeiling" mapstructure:"contributionCeiling"`
	ChildAllowance      float64 `json:"childAllowance" yaml:"childAllowance" mapstructure:"childAllowance"`
	OvertimeMax         float64 `json:"overtimeMax" yaml:"overtimeMax" mapstructure:"overtimeMax"`
	SecondJobMax        float64 `json:"secondJobMax" yaml:"secondJobMax" mapstructure:"secondJobMax"`
	InsuranceMax        float64 `json:"insuranceMax" yaml:"insuranceMax" mapstructure:"insuranceMax"`
	PeriodsPerYear      float64 `json:"periodsPerYear" yaml:"periodsPerYear" mapstructure:"periodsPerYear"`
}

func (c FrequencyConfig) factor() float64 {
	if c.Factor <= 0 {
		return 1
	}
	return c.Factor
}

// ToMonthly converts an amount paid at this frequency into its monthly equivalent.
func (c FrequencyConfig) ToMonthly(amount float64) float64 {
	return amount / c.factor()
}

// FromMonthly converts a monthly amount into this frequency.
func (c FrequencyConfig) FromMonthly(amount float64) float64 {
	return amount * c.factor()
}

type IncomeTax struct {
	LowerRate float64 `json:"lowerRate" yaml:"lowerRate" mapstructure:"lowerRate"`
	UpperRate float64 `json:"upperRate" yaml:"upperRate" mapstructure:"upperRate"`
}

// PositionPreset is a named salary package expressed in monthly terms.
type PositionPreset struct {
	ID                   string             `json:"id" yaml:"id" mapstructure:"id"`
	Title                string             `json:"title" yaml:"title" mapstructure:"title"`
	BaseSalary           float64            `json:"baseSalary" yaml:"baseSalary" mapstructure:"baseSalary"`
	TaxableAllowances    map[string]float64 `json:"taxableAllowances" yaml:"taxableAllowances" mapstructure:"taxableAllowances"`
	NonTaxableAllowances map[string]float64 `json:"nonTaxableAllowances" yaml:"nonTaxableAllowances" mapstructure:"nonTaxableAllowances"`
	TotalTaxable         float64            `json:"totalTaxable" yaml:"totalTaxable" mapstructure:"totalTaxable"`
	TotalNonTaxable      float64            `json:"totalNonTaxable" yaml:"totalNonTaxable" mapstructure:"totalNonTaxable"`
}

// MonthlyPackage is base salary plus both allowance totals.
func (p PositionPreset) MonthlyPackage() float64 {
	return p.BaseSalary + p.TotalTaxable + p.TotalNonTaxable
}

type IncreaseOption struct {
	Percent float64 `json:"percent" yaml:"percent" mapstructure:"percent"`
	Label   string  `json:"label" yaml:"label" mapstructure:"label"`
}

type Payroll struct {
	Frequencies         map[Frequency]FrequencyConfig               `json:"frequencies" yaml:"frequencies" mapstructure:"frequencies"`
	Tax                 IncomeTax                                   `json:"tax" yaml:"tax" mapstructure:"tax"`
	InsuranceGrossShare float64                                     `json:"insuranceGrossShare" yaml:"insuranceGrossShare" mapstructure:"insuranceGrossShare"`
	Qualifications      map[Frequency]map[QualificationTier]float64 `json:"qualifications" yaml:"qualifications" mapstructure:"qualifications"`
	InsurancePremiums   map[InsurancePlan]float64                   `json:"insurancePremiums" yaml:"insurancePremiums" mapstructure:"insurancePremiums"`
	Presets             []PositionPreset                            `json:"presets" yaml:"presets" mapstructure:"presets"`
	IncreaseOptions     []IncreaseOption                            `json:"increaseOptions" yaml:"increaseOptions" mapstructure:"increaseOptions"`
}

// Range is an inclusive displacement range in cc. A Max of zero or less
// leaves the range open above Min.
type Range struct {
	Min int `json:"min" yaml:"min" mapstructure:"min"`
	Max int `json:"max" yaml:"max" mapstructure:"max"`
}

func (r Range) Bounds() Range { return r }

func (r Range) Unbounded() bool { return r.Max <= 0 }

func (r Range) Contains(key int) bool {
	if key < r.Min {
		return false
	}
	return r.Unbounded() || key <= r.Max
}

// RateBracket carries the percentage rates used by the standard formula.
type RateBracket struct {
	Range  `yaml:",inline" mapstructure:",squash"`
	Duty   float64 `json:"duty" yaml:"duty" mapstructure:"duty"`
	Excise float64 `json:"excise" yaml:"excise" mapstructure:"excise"`
	VAT    float64 `json:"vat" yaml:"vat" mapstructure:"vat"`
}

type AgedKind string

const (
	AgedFlatGYD AgedKind = "flat_gyd"
	AgedFormula AgedKind = "formula"
)

// AgedBracket applies to vehicles four years and older: either a flat GYD
// excise or excise = (CIF + addon) * rate + addon, both without duty or VAT.
type AgedBracket struct {
	Range     `yaml:",inline" mapstructure:",squash"`
	Kind      AgedKind `json:"kind" yaml:"kind" mapstructure:"kind"`
	AmountGYD float64  `json:"amountGyd,omitempty" yaml:"amountGyd,omitempty" mapstructure:"amountGyd"`
	AddonUSD  float64  `json:"addonUsd,omitempty" yaml:"addonUsd,omitempty" mapstructure:"addonUsd"`
	Rate      float64  `json:"rate,omitempty" yaml:"rate,omitempty" mapstructure:"rate"`
}

// FlatTier is a flat GYD excise for displacements up to MaxCC.
type FlatTier struct {
	MaxCC     int     `json:"maxCc" yaml:"maxCc" mapstructure:"maxCc"`
	AmountGYD float64 `json:"amountGyd" yaml:"amountGyd" mapstructure:"amountGyd"`
}

type Vehicle struct {
	// BudgetYear names the budget that introduced the special rates in notes.
	BudgetYear           int           `json:"budgetYear" yaml:"budgetYear" mapstructure:"budgetYear"`
	DefaultExchangeRate  float64       `json:"defaultExchangeRate" yaml:"defaultExchangeRate" mapstructure:"defaultExchangeRate"`
	DealerMultiplier     float64       `json:"dealerMultiplier" yaml:"dealerMultiplier" mapstructure:"dealerMultiplier"`
	GovernmentExciseUSD  float64       `json:"governmentExciseUsd" yaml:"governmentExciseUsd" mapstructure:"governmentExciseUsd"`
	GasolineUnder4       []RateBracket `json:"gasolineUnder4" yaml:"gasolineUnder4" mapstructure:"gasolineUnder4"`
	DieselUnder4         []RateBracket `json:"dieselUnder4" yaml:"dieselUnder4" mapstructure:"dieselUnder4"`
	GasolineAged         []AgedBracket `json:"gasolineAged" yaml:"gasolineAged" mapstructure:"gasolineAged"`
	DieselAged           []AgedBracket `json:"dieselAged" yaml:"dieselAged" mapstructure:"dieselAged"`
	Motorcycle           []RateBracket `json:"motorcycle" yaml:"motorcycle" mapstructure:"motorcycle"`
	DoubleCabSpecial     []FlatTier    `json:"doubleCabSpecial" yaml:"doubleCabSpecial" mapstructure:"doubleCabSpecial"`
	VATExemptMaxCC       int           `json:"vatExemptMaxCc" yaml:"vatExemptMaxCc" mapstructure:"vatExemptMaxCc"`
	HybridVATExemptMaxCC int           `json:"hybridVatExemptMaxCc" yaml:"hybridVatExemptMaxCc" mapstructure:"hybridVatExemptMaxCc"`
}

// Set is the complete rate table legislated for one fiscal year.
type Set struct {
	FiscalYear int     `json:"fiscalYear" yaml:"fiscalYear" mapstructure:"fiscalYear"`
	Name       string  `json:"name" yaml:"name" mapstructure:"name"`
	Payroll    Payroll `json:"payroll" yaml:"payroll" mapstructure:"payroll"`
	Vehicle    Vehicle `json:"vehicle" yaml:"vehicle" mapstructure:"vehicle"`
}
