package vehicle

import (
	"fmt"
	"math"
	"strconv"

	"github.com/samber/lo"

	"gytax/internal/domain/ratetable"
	"gytax/internal/money"
)

const agedNoDutyNote = "No duty, no VAT for 4+ year vehicles"

// ComputeDuty prices the import duty, excise and VAT on one vehicle. The
// first matching rule wins: electric, special-rate ATV, government plate,
// special-rate double cab, motorcycle or ATV, then the standard tables by
// age. It is pure and total.
func ComputeDuty(in Input, rates ratetable.Vehicle) Result {
	in = normalize(in, rates)
	r := Result{
		Input:        in,
		CIFUSD:       in.CIFUSD,
		CIFGYD:       in.CIFUSD * in.ExchangeRate,
		ExchangeRate: in.ExchangeRate,
		Notes:        []string{},
	}

	switch {
	case in.Fuel == FuelElectric || in.Category == CategoryElectric:
		r.Rule = RuleElectric
		r.exempt("Electric vehicles: 0% duty, 0% excise, 0% VAT", "Electric Vehicle - All taxes exempt")
	case in.SpecialRates && in.Category == CategoryATV:
		r.Rule = RuleATVExempt
		r.exempt(
			fmt.Sprintf("Budget %d: All taxes removed on ATVs", rates.BudgetYear),
			fmt.Sprintf("%d Budget - ATV exempt from all taxes", rates.BudgetYear),
		)
	case in.Plate == PlateGovernment:
		r.Rule = RuleGovernment
		r.government(rates)
	case in.SpecialRates && in.Category == CategoryDoubleCab:
		if !r.doubleCab(rates) {
			r.standard(rates)
		}
	case in.Category == CategoryMotorcycle || in.Category == CategoryATV:
		r.Rule = RuleMotorcycle
		r.motorcycle(rates)
	default:
		r.standard(rates)
	}
	return r
}

func (r *Result) exempt(note, formula string) {
	r.Notes = append(r.Notes, note)
	r.Formula = formula
	r.TotalCostUSD = r.CIFUSD
	r.TotalCostGYD = r.CIFGYD
}

func (r *Result) government(rates ratetable.Vehicle) {
	excise := rates.GovernmentExciseUSD
	r.ExciseUSD = excise
	r.ExciseGYD = excise * r.ExchangeRate
	r.TotalTaxUSD = excise
	r.TotalTaxGYD = r.ExciseGYD
	r.TotalCostUSD = r.CIFUSD + excise
	r.TotalCostGYD = r.CIFGYD + r.ExciseGYD
	r.Notes = append(r.Notes, fmt.Sprintf("Government plate: Flat excise US$%s, no duty, no VAT", money.Whole(excise)))
	r.Formula = fmt.Sprintf("G-Plate: Flat excise US$%s", money.Whole(excise))
}

// doubleCab applies the flat special-rate tiers. It reports false, after
// noting it, when the displacement is above every tier.
func (r *Result) doubleCab(rates ratetable.Vehicle) bool {
	cc := r.Input.EngineCC
	for i, tier := range rates.DoubleCabSpecial {
		if cc > tier.MaxCC {
			continue
		}
		band := fmt.Sprintf("under %dcc", tier.MaxCC)
		if i > 0 {
			band = fmt.Sprintf("%d-%dcc", rates.DoubleCabSpecial[i-1].MaxCC, tier.MaxCC)
		}
		r.Rule = RuleDoubleCab
		r.Notes = append(r.Notes, fmt.Sprintf("Budget %d: Double-cab %s → %s flat", rates.BudgetYear, band, money.GYD(tier.AmountGYD)))
		r.flatGYD(tier.AmountGYD)
		r.Formula = fmt.Sprintf("%d Budget: Double-cab flat rate GY$%.0fM", rates.BudgetYear, tier.AmountGYD/1_000_000)
		return true
	}
	if n := len(rates.DoubleCabSpecial); n > 0 {
		top := rates.DoubleCabSpecial[n-1]
		r.Notes = append(r.Notes, fmt.Sprintf("Double-cab over %dcc: standard rates apply", top.MaxCC))
	}
	return false
}

func (r *Result) flatGYD(amount float64) {
	r.ExciseGYD = amount
	r.ExciseUSD = amount / r.ExchangeRate
	r.TotalTaxGYD = amount
	r.TotalTaxUSD = r.ExciseUSD
	r.TotalCostGYD = r.CIFGYD + amount
	r.TotalCostUSD = r.CIFUSD + r.ExciseUSD
}

func (r *Result) motorcycle(rates ratetable.Vehicle) {
	bracket, _ := ratetable.FindBracket(r.Input.EngineCC, rates.Motorcycle)
	r.applyRates(bracket, true, rates)

	band := fmt.Sprintf("≤%dcc", bracket.Max)
	if bracket.Unbounded() {
		band = fmt.Sprintf(">%dcc", max(bracket.Min-1, 0))
	}
	r.Notes = append(r.Notes, fmt.Sprintf("Motorcycle %s: %s duty, %s excise, %s VAT",
		band, money.Percent(bracket.Duty), money.Percent(bracket.Excise), money.Percent(bracket.VAT)))
	r.dealerNote(rates, " + Duty")
	r.Formula = fmt.Sprintf("Motorcycle %dcc: Duty=%s, Excise=%s, VAT=%s",
		r.Input.EngineCC, money.Percent(bracket.Duty), money.Percent(bracket.Excise), money.Percent(bracket.VAT))
}

func (r *Result) standard(rates ratetable.Vehicle) {
	if r.Input.Age == AgeAged {
		r.Rule = RuleAged
		r.aged(rates)
		return
	}
	r.Rule = RuleUnder4
	in := r.Input

	table := rates.GasolineUnder4
	if in.Fuel == FuelDiesel {
		table = rates.DieselUnder4
	}
	bracket, _ := ratetable.FindBracket(in.EngineCC, table)

	applyVAT := true
	if in.SpecialRates && in.EngineCC <= rates.VATExemptMaxCC {
		applyVAT = false
		r.Notes = append(r.Notes, fmt.Sprintf("Budget %d: VAT removed on vehicles under %dcc (under 4 years)", rates.BudgetYear, rates.VATExemptMaxCC))
	}
	if in.SpecialRates && in.Fuel == FuelHybrid && in.EngineCC <= rates.HybridVATExemptMaxCC {
		applyVAT = false
		r.Notes = append(r.Notes, fmt.Sprintf("Budget %d: VAT removed on hybrid vehicles under %dcc", rates.BudgetYear, rates.HybridVATExemptMaxCC))
	}

	r.applyRates(bracket, applyVAT, rates)
	r.dealerNote(rates, " + Duty")
	r.Formula = fmt.Sprintf("Under 4 years, %s, %dcc: Duty=%s, Excise=%s, VAT=%s",
		in.Fuel, in.EngineCC, money.Percent(r.DutyRate), money.Percent(r.ExciseRate), money.Percent(r.VATRate))
}

// applyRates runs the percentage formula shared by motorcycles and vehicles
// under four years: duty on CIF, excise on the dealer-adjusted CIF plus
// duty, VAT on CIF plus duty plus excise.
func (r *Result) applyRates(bracket ratetable.RateBracket, applyVAT bool, rates ratetable.Vehicle) {
	cif := r.CIFUSD
	duty := bracket.Duty * cif
	excise := bracket.Excise * (effectiveCIF(r.Input, rates) + duty)
	vat := 0.0
	r.VATRate = 0
	if applyVAT {
		vat = bracket.VAT * (cif + duty + excise)
		r.VATRate = bracket.VAT
	}

	r.DutyRate = bracket.Duty
	r.ExciseRate = bracket.Excise
	r.DutyUSD = duty
	r.ExciseUSD = excise
	r.VATUSD = vat
	r.TotalTaxUSD = duty + excise + vat
	r.TotalCostUSD = cif + r.TotalTaxUSD
	r.toGYD()
}

func (r *Result) aged(rates ratetable.Vehicle) {
	in := r.Input
	table := rates.GasolineAged
	if in.Fuel == FuelDiesel {
		table = rates.DieselAged
	}
	bracket, _ := ratetable.FindBracket(in.EngineCC, table)

	if bracket.Kind == ratetable.AgedFlatGYD {
		r.flatGYD(bracket.AmountGYD)
		r.Notes = append(r.Notes,
			fmt.Sprintf("4+ years, %dcc: Flat excise %s", in.EngineCC, money.GYD(bracket.AmountGYD)),
			agedNoDutyNote,
		)
		r.Formula = "4+ years: Flat " + money.GYD(bracket.AmountGYD)
		return
	}

	excise := (effectiveCIF(in, rates)+bracket.AddonUSD)*bracket.Rate + bracket.AddonUSD
	r.ExciseUSD = excise
	r.TotalTaxUSD = excise
	r.TotalCostUSD = r.CIFUSD + excise
	r.toGYD()
	r.Notes = append(r.Notes,
		fmt.Sprintf("4+ years, %s, %dcc: Formula-based excise", in.Fuel, in.EngineCC),
		agedNoDutyNote,
	)
	r.dealerNote(rates, "")
	addon := money.Whole(bracket.AddonUSD)
	r.Formula = fmt.Sprintf("4+ years: (CIF + US$%s) × %s + US$%s", addon, money.Percent(bracket.Rate), addon)
}

func (r *Result) toGYD() {
	rate := r.ExchangeRate
	r.DutyGYD = r.DutyUSD * rate
	r.ExciseGYD = r.ExciseUSD * rate
	r.VATGYD = r.VATUSD * rate
	r.TotalTaxGYD = r.TotalTaxUSD * rate
	r.TotalCostGYD = r.TotalCostUSD * rate
}

func (r *Result) dealerNote(rates ratetable.Vehicle, base string) {
	if !r.Input.Dealer {
		return
	}
	r.Notes = append(r.Notes, fmt.Sprintf("Dealer: Excise calculated on %s× CIF%s",
		strconv.FormatFloat(dealerMultiplier(rates), 'f', -1, 64), base))
}

func effectiveCIF(in Input, rates ratetable.Vehicle) float64 {
	if in.Dealer {
		return in.CIFUSD * dealerMultiplier(rates)
	}
	return in.CIFUSD
}

func dealerMultiplier(rates ratetable.Vehicle) float64 {
	if rates.DealerMultiplier <= 0 {
		return 1
	}
	return rates.DealerMultiplier
}

func normalize(in Input, rates ratetable.Vehicle) Input {
	if in.ExchangeRate <= 0 || math.IsNaN(in.ExchangeRate) || math.IsInf(in.ExchangeRate, 0) {
		in.ExchangeRate = rates.DefaultExchangeRate
	}
	if in.CIFUSD < 0 || math.IsNaN(in.CIFUSD) || math.IsInf(in.CIFUSD, 0) {
		in.CIFUSD = 0
	}
	in.EngineCC = max(in.EngineCC, 0)
	if !lo.Contains(AgeClasses, in.Age) {
		in.Age = AgeUnder4
	}
	if !lo.Contains(Categories, in.Category) {
		in.Category = CategoryCar
	}
	if !lo.Contains(FuelClasses, in.Fuel) {
		in.Fuel = FuelGasoline
	}
	if !lo.Contains(PlateTypes, in.Plate) {
		in.Plate = PlatePrivate
	}
	return in
}
