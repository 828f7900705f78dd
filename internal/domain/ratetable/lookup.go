package ratetable

import "github.com/samber/lo"

type Bracketed interface {
	Bounds() Range
}

// FindBracket returns the first bracket whose range contains key. When no
// range matches, the last bracket is returned so open-ended tables never
// fail. Tables must be sorted ascending by Min. ok is false only for an
// empty table.
func FindBracket[B Bracketed](key int, table []B) (B, bool) {
	var zero B
	if len(table) == 0 {
		return zero, false
	}
	for _, bracket := range table {
		if bracket.Bounds().Contains(key) {
			return bracket, true
		}
	}
	return table[len(table)-1], true
}

// Frequency resolves the config for f, falling back to the monthly config.
func (p Payroll) Frequency(f Frequency) FrequencyConfig {
	if cfg, ok := p.Frequencies[f]; ok {
		return cfg
	}
	return p.Frequencies[DefaultFrequency]
}

// Qualification returns the allowance for tier at frequency f.
func (p Payroll) Qualification(f Frequency, tier QualificationTier) float64 {
	byTier, ok := p.Qualifications[f]
	if !ok {
		byTier = p.Qualifications[DefaultFrequency]
	}
	return byTier[tier]
}

// Premium returns the monthly premium for plan. Custom and unknown plans
// have no table premium.
func (p Payroll) Premium(plan InsurancePlan) float64 {
	if plan == InsuranceCustom {
		return 0
	}
	return p.InsurancePremiums[plan]
}

func (p Payroll) Preset(id string) (PositionPreset, bool) {
	return lo.Find(p.Presets, func(preset PositionPreset) bool {
		return preset.ID == id
	})
}

func IsFrequency(value string) bool {
	return lo.Contains(Frequencies, Frequency(value))
}

func IsQualificationTier(value string) bool {
	return lo.Contains(QualificationTiers, QualificationTier(value))
}

func IsInsurancePlan(value string) bool {
	return lo.Contains(InsurancePlans, InsurancePlan(value))
}
