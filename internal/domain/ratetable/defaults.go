package ratetable

// Guyana2026 returns the rate table legislated for the 2026 fiscal year.
// Every call builds a fresh value so callers can never share maps.
func Guyana2026() Set {
	return Set{
		FiscalYear: 2026,
		Name:       "Guyana 2026",
		Payroll:    guyana2026Payroll(),
		Vehicle:    guyana2026Vehicle(),
	}
}

func guyana2026Payroll() Payroll {
	return Payroll{
		Frequencies: map[Frequency]FrequencyConfig{
			FrequencyDaily: {
				Label:               "Daily",
				PeriodLabel:         "per day",
				Factor:              1 / 21.67,
				PersonalAllowance:   6460,
				TaxThreshold:        8548,
				ContributionRate:    0.056,
				ContributionCeiling: 12923,
				ChildAllowance:      462,
				OvertimeMax:         2308,
				SecondJobMax:        2308,
				InsuranceMax:        2308,
				PeriodsPerYear:      260,
			},
			FrequencyWeekly: {
				Label:               "Weekly",
				PeriodLabel:         "per week",
				Factor:              1 / 4.33,
				PersonalAllowance:   32333,
				TaxThreshold:        60000,
				ContributionRate:    0.056,
				ContributionCeiling: 64615,
				ChildAllowance:      2308,
				OvertimeMax:         11538,
				SecondJobMax:        11538,
				InsuranceMax:        11538,
				PeriodsPerYear:      52,
			},
			FrequencyFortnightly: {
				Label:               "Fortnightly",
				PeriodLabel:         "per fortnight",
				Factor:              1 / 2.17,
				PersonalAllowance:   64516,
				TaxThreshold:        120000,
				ContributionRate:    0.056,
				ContributionCeiling: 129231,
				ChildAllowance:      4615,
				OvertimeMax:         23077,
				SecondJobMax:        23077,
				InsuranceMax:        23077,
				PeriodsPerYear:      26,
			},
			FrequencyMonthly: {
				Label:               "Monthly",
				PeriodLabel:         "per month",
				Factor:              1,
				PersonalAllowance:   140000,
				TaxThreshold:        260000,
				ContributionRate:    0.056,
				ContributionCeiling: 280000,
				ChildAllowance:      10000,
				OvertimeMax:         50000,
				SecondJobMax:        50000,
				InsuranceMax:        50000,
				PeriodsPerYear:      12,
			},
			FrequencyYearly: {
				Label:               "Yearly",
				PeriodLabel:         "per year",
				Factor:              12,
				PersonalAllowance:   1680000,
				TaxThreshold:        3120000,
				ContributionRate:    0.056,
				ContributionCeiling: 3360000,
				ChildAllowance:      120000,
				OvertimeMax:         600000,
				SecondJobMax:        600000,
				InsuranceMax:        600000,
				PeriodsPerYear:      1,
			},
		},
		Tax: IncomeTax{
			LowerRate: 0.25,
			UpperRate: 0.35,
		},
		InsuranceGrossShare: 0.10,
		Qualifications: map[Frequency]map[QualificationTier]float64{
			FrequencyDaily:       {QualificationNone: 0, QualificationACCA: 692, QualificationMasters: 1015, QualificationPhD: 1477},
			FrequencyWeekly:      {QualificationNone: 0, QualificationACCA: 3462, QualificationMasters: 5077, QualificationPhD: 7385},
			FrequencyFortnightly: {QualificationNone: 0, QualificationACCA: 6923, QualificationMasters: 10154, QualificationPhD: 14769},
			FrequencyMonthly:     {QualificationNone: 0, QualificationACCA: 15000, QualificationMasters: 22000, QualificationPhD: 32000},
			FrequencyYearly:      {QualificationNone: 0, QualificationACCA: 180000, QualificationMasters: 264000, QualificationPhD: 384000},
		},
		InsurancePremiums: map[InsurancePlan]float64{
			InsuranceNone:        0,
			InsuranceEmployee:    1469,
			InsuranceEmployeeOne: 3182,
			InsuranceFamily:      4970,
		},
		Presets: []PositionPreset{
			{
				ID: "it-officer-2", Title: "IT Officer II", BaseSalary: 247451,
				TaxableAllowances:    map[string]float64{"duty": 15000, "uniform": 5000},
				NonTaxableAllowances: map[string]float64{"travel": 0, "telecom": 0},
				TotalTaxable:         20000, TotalNonTaxable: 0,
			},
			{
				ID: "ict-tech-1", Title: "ICT Technician I", BaseSalary: 308540,
				TaxableAllowances:    map[string]float64{"duty": 0, "uniform": 5000},
				NonTaxableAllowances: map[string]float64{"travel": 5000, "telecom": 5000},
				TotalTaxable:         5000, TotalNonTaxable: 10000,
			},
			{
				ID: "ict-tech-2", Title: "ICT Technician II", BaseSalary: 176564,
				TaxableAllowances:    map[string]float64{"duty": 12000, "uniform": 5000},
				NonTaxableAllowances: map[string]float64{"travel": 0, "telecom": 0},
				TotalTaxable:         17000, TotalNonTaxable: 0,
			},
			{
				ID: "ict-tech-3", Title: "ICT Technician III", BaseSalary: 148051,
				TaxableAllowances:    map[string]float64{"duty": 10000, "uniform": 5000},
				NonTaxableAllowances: map[string]float64{"travel": 0, "telecom": 0},
				TotalTaxable:         15000, TotalNonTaxable: 0,
			},
			{
				ID: "assist-ict-eng-3", Title: "Assistant ICT Engineer III", BaseSalary: 285685,
				TaxableAllowances:    map[string]float64{"duty": 0, "uniform": 5000},
				NonTaxableAllowances: map[string]float64{"travel": 5000, "telecom": 5000},
				TotalTaxable:         5000, TotalNonTaxable: 10000,
			},
			{
				ID: "ict-eng-3", Title: "ICT Engineer III", BaseSalary: 393301,
				TaxableAllowances:    map[string]float64{"uniform": 5000},
				NonTaxableAllowances: map[string]float64{"travel": 10000, "telecom": 5000},
				TotalTaxable:         5000, TotalNonTaxable: 15000,
			},
			{
				ID: "admin-officer-2", Title: "Administrative Officer II", BaseSalary: 180000,
				TaxableAllowances:    map[string]float64{"duty": 10000, "uniform": 3000},
				NonTaxableAllowances: map[string]float64{"travel": 0, "telecom": 0},
				TotalTaxable:         13000, TotalNonTaxable: 0,
			},
			{
				ID: "accounts-clerk-1", Title: "Accounts Clerk I", BaseSalary: 150000,
				TaxableAllowances:    map[string]float64{"duty": 8000, "uniform": 3000},
				NonTaxableAllowances: map[string]float64{"travel": 0, "telecom": 0},
				TotalTaxable:         11000, TotalNonTaxable: 0,
			},
			{
				ID: "teacher-primary", Title: "Primary School Teacher", BaseSalary: 185000,
				TaxableAllowances:    map[string]float64{"duty": 0, "uniform": 0},
				NonTaxableAllowances: map[string]float64{"travel": 15000, "station": 5000},
				TotalTaxable:         0, TotalNonTaxable: 20000,
			},
			{
				ID: "nurse-staff", Title: "Staff Nurse", BaseSalary: 220000,
				TaxableAllowances:    map[string]float64{"duty": 20000, "uniform": 5000},
				NonTaxableAllowances: map[string]float64{"travel": 8000, "station": 5000},
				TotalTaxable:         25000, TotalNonTaxable: 13000,
			},
		},
		IncreaseOptions: []IncreaseOption{
			{Percent: 6, Label: "6% (Standard Government)"},
			{Percent: 8, Label: "8% (July 2026 Increase)"},
			{Percent: 10, Label: "10% (Performance Based)"},
			{Percent: 12, Label: "12% (Promotion)"},
			{Percent: 15, Label: "15% (Significant Promotion)"},
		},
	}
}

func guyana2026Vehicle() Vehicle {
	return Vehicle{
		BudgetYear:          2026,
		DefaultExchangeRate: 218,
		DealerMultiplier:    1.5,
		GovernmentExciseUSD: 2000,
		GasolineUnder4: []RateBracket{
			{Range: Range{Min: 0, Max: 1000}, Duty: 0.35, Excise: 0, VAT: 0.14},
			{Range: Range{Min: 1001, Max: 1500}, Duty: 0.35, Excise: 0, VAT: 0.14},
			{Range: Range{Min: 1501, Max: 1800}, Duty: 0.45, Excise: 0.10, VAT: 0.14},
			{Range: Range{Min: 1801, Max: 2000}, Duty: 0.45, Excise: 0.10, VAT: 0.14},
			{Range: Range{Min: 2001, Max: 3000}, Duty: 0.45, Excise: 1.10, VAT: 0.14},
			{Range: Range{Min: 3001}, Duty: 0.45, Excise: 1.40, VAT: 0.14},
		},
		DieselUnder4: []RateBracket{
			{Range: Range{Min: 0, Max: 1500}, Duty: 0.35, Excise: 0, VAT: 0.14},
			{Range: Range{Min: 1501, Max: 2000}, Duty: 0.45, Excise: 0.10, VAT: 0.14},
			{Range: Range{Min: 2001, Max: 2500}, Duty: 0.45, Excise: 1.10, VAT: 0.14},
			{Range: Range{Min: 2501}, Duty: 0.45, Excise: 1.10, VAT: 0.14},
		},
		GasolineAged: []AgedBracket{
			{Range: Range{Min: 0, Max: 1000}, Kind: AgedFlatGYD, AmountGYD: 800000},
			{Range: Range{Min: 1001, Max: 1500}, Kind: AgedFlatGYD, AmountGYD: 800000},
			{Range: Range{Min: 1501, Max: 1800}, Kind: AgedFormula, AddonUSD: 6000, Rate: 0.30},
			{Range: Range{Min: 1801, Max: 2000}, Kind: AgedFormula, AddonUSD: 6500, Rate: 0.30},
			{Range: Range{Min: 2001, Max: 3000}, Kind: AgedFormula, AddonUSD: 13500, Rate: 0.70},
			{Range: Range{Min: 3001}, Kind: AgedFormula, AddonUSD: 14500, Rate: 1.00},
		},
		DieselAged: []AgedBracket{
			{Range: Range{Min: 0, Max: 1500}, Kind: AgedFlatGYD, AmountGYD: 800000},
			{Range: Range{Min: 1501, Max: 2000}, Kind: AgedFormula, AddonUSD: 15400, Rate: 0.30},
			{Range: Range{Min: 2001, Max: 2500}, Kind: AgedFormula, AddonUSD: 15400, Rate: 0.70},
			{Range: Range{Min: 2501, Max: 3000}, Kind: AgedFormula, AddonUSD: 15500, Rate: 0.70},
			{Range: Range{Min: 3001}, Kind: AgedFormula, AddonUSD: 17200, Rate: 1.00},
		},
		Motorcycle: []RateBracket{
			{Range: Range{Min: 0, Max: 175}, Duty: 0.20, Excise: 0, VAT: 0.14},
			{Range: Range{Min: 176}, Duty: 0.20, Excise: 0.10, VAT: 0.14},
		},
		DoubleCabSpecial: []FlatTier{
			{MaxCC: 2000, AmountGYD: 2000000},
			{MaxCC: 2500, AmountGYD: 3000000},
		},
		VATExemptMaxCC:       1500,
		HybridVATExemptMaxCC: 2000,
	}
}
