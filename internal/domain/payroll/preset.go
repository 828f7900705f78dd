package payroll

import (
	"math"

	"gytax/internal/domain/ratetable"
)

// ApplyPreset fills in the salary package of preset, converted from monthly
// terms into the input's frequency and rounded to whole dollars. The
// vacation allowance becomes one month of the preset's gross package.
func ApplyPreset(in Input, preset ratetable.PositionPreset, cfg ratetable.FrequencyConfig) Input {
	in.Position = preset.Title
	in.BaseSalary = math.Round(cfg.FromMonthly(preset.BaseSalary))
	in.TaxableAllowances = math.Round(cfg.FromMonthly(preset.TotalTaxable))
	in.NonTaxableAllowances = math.Round(cfg.FromMonthly(preset.TotalNonTaxable))
	in.VacationAllowance = preset.MonthlyPackage()
	return in
}
