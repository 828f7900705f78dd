package ratetable

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Validate checks the structural invariants the engines rely on: every
// frequency is configured and every bracket table covers [0, inf) without
// gaps or overlaps.
func (s Set) Validate() error {
	var problems []string
	if s.FiscalYear <= 0 {
		problems = append(problems, "fiscalYear must be positive")
	}
	problems = append(problems, s.Payroll.validate()...)
	problems = append(problems, s.Vehicle.validate()...)
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func (p Payroll) validate() []string {
	var problems []string
	for _, f := range Frequencies {
		cfg, ok := p.Frequencies[f]
		if !ok {
			problems = append(problems, fmt.Sprintf("frequency %s missing", f))
			continue
		}
		if cfg.Factor <= 0 {
			problems = append(problems, fmt.Sprintf("frequency %s factor must be positive", f))
		}
		if cfg.PeriodsPerYear <= 0 {
			problems = append(problems, fmt.Sprintf("frequency %s periodsPerYear must be positive", f))
		}
	}
	if p.Tax.LowerRate < 0 || p.Tax.UpperRate < 0 {
		problems = append(problems, "tax rates must not be negative")
	}
	if p.InsuranceGrossShare < 0 {
		problems = append(problems, "insuranceGrossShare must not be negative")
	}
	return problems
}

func (v Vehicle) validate() []string {
	var problems []string
	if v.BudgetYear <= 0 {
		problems = append(problems, "budgetYear must be positive")
	}
	if v.DefaultExchangeRate <= 0 {
		problems = append(problems, "defaultExchangeRate must be positive")
	}
	problems = append(problems, checkContiguous("gasolineUnder4", v.GasolineUnder4)...)
	problems = append(problems, checkContiguous("dieselUnder4", v.DieselUnder4)...)
	problems = append(problems, checkContiguous("gasolineAged", v.GasolineAged)...)
	problems = append(problems, checkContiguous("dieselAged", v.DieselAged)...)
	problems = append(problems, checkContiguous("motorcycle", v.Motorcycle)...)
	for i, b := range lo.Flatten([][]AgedBracket{v.GasolineAged, v.DieselAged}) {
		if b.Kind != AgedFlatGYD && b.Kind != AgedFormula {
			problems = append(problems, fmt.Sprintf("aged bracket %d has unknown kind %q", i, b.Kind))
		}
	}
	for i := 1; i < len(v.DoubleCabSpecial); i++ {
		if v.DoubleCabSpecial[i].MaxCC <= v.DoubleCabSpecial[i-1].MaxCC {
			problems = append(problems, "doubleCabSpecial tiers must ascend by maxCc")
			break
		}
	}
	return problems
}

func checkContiguous[B Bracketed](name string, table []B) []string {
	if len(table) == 0 {
		return []string{name + " has no brackets"}
	}
	var problems []string
	if first := table[0].Bounds(); first.Min != 0 {
		problems = append(problems, fmt.Sprintf("%s must start at 0, starts at %d", name, first.Min))
	}
	for i := 1; i < len(table); i++ {
		prev, next := table[i-1].Bounds(), table[i].Bounds()
		if prev.Unbounded() {
			problems = append(problems, fmt.Sprintf("%s bracket %d is open-ended but not last", name, i-1))
			break
		}
		if next.Min != prev.Max+1 {
			problems = append(problems, fmt.Sprintf("%s bracket %d starts at %d, want %d", name, i, next.Min, prev.Max+1))
		}
	}
	if last := table[len(table)-1].Bounds(); !last.Unbounded() {
		problems = append(problems, name+" last bracket must be open-ended")
	}
	return problems
}
