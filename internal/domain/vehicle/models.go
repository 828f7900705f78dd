package vehicle

type AgeClass string

const (
	AgeUnder4 AgeClass = "under4"
	AgeAged   AgeClass = "4plus"
)

var AgeClasses = []AgeClass{AgeUnder4, AgeAged}

type Category string

const (
	CategoryCar        Category = "car"
	CategorySUV        Category = "suv"
	CategoryVan        Category = "van"
	CategoryBus        Category = "bus"
	CategorySingleCab  Category = "single_cab"
	CategoryDoubleCab  Category = "double_cab"
	CategoryMotorcycle Category = "motorcycle"
	CategoryATV        Category = "atv"
	CategoryElectric   Category = "electric"
)

var Categories = []Category{
	CategoryCar,
	CategorySUV,
	CategoryVan,
	CategoryBus,
	CategorySingleCab,
	CategoryDoubleCab,
	CategoryMotorcycle,
	CategoryATV,
	CategoryElectric,
}

type FuelClass string

const (
	FuelGasoline FuelClass = "gasoline"
	FuelDiesel   FuelClass = "diesel"
	FuelHybrid   FuelClass = "hybrid"
	FuelElectric FuelClass = "electric"
)

var FuelClasses = []FuelClass{FuelGasoline, FuelDiesel, FuelHybrid, FuelElectric}

type PlateType string

const (
	PlatePrivate    PlateType = "private"
	PlateGovernment PlateType = "government"
)

var PlateTypes = []PlateType{PlatePrivate, PlateGovernment}

// Rule names the dispatch branch that priced a vehicle.
type Rule string

const (
	RuleElectric   Rule = "electric"
	RuleATVExempt  Rule = "atv_exempt"
	RuleGovernment Rule = "government"
	RuleDoubleCab  Rule = "double_cab"
	RuleMotorcycle Rule = "motorcycle"
	RuleUnder4     Rule = "under4"
	RuleAged       Rule = "aged"
)

// Input describes one vehicle import. SpecialRates enables the current
// budget's exemptions and flat rates.
type Input struct {
	CIFUSD       float64   `json:"cifUsd"`
	ExchangeRate float64   `json:"exchangeRate"`
	Age          AgeClass  `json:"age"`
	Category     Category  `json:"category"`
	Fuel         FuelClass `json:"fuel"`
	EngineCC     int       `json:"engineCc"`
	Plate        PlateType `json:"plate"`
	Dealer       bool      `json:"dealer"`
	SpecialRates bool      `json:"specialRates"`
}

// Result carries every tax in both currencies. Rates are fractions, so 0.35
// is 35%.
type Result struct {
	Input        Input    `json:"input"`
	Rule         Rule     `json:"rule"`
	CIFUSD       float64  `json:"cifUsd"`
	CIFGYD       float64  `json:"cifGyd"`
	ExchangeRate float64  `json:"exchangeRate"`
	DutyUSD      float64  `json:"dutyUsd"`
	DutyGYD      float64  `json:"dutyGyd"`
	ExciseUSD    float64  `json:"exciseUsd"`
	ExciseGYD    float64  `json:"exciseGyd"`
	VATUSD       float64  `json:"vatUsd"`
	VATGYD       float64  `json:"vatGyd"`
	TotalTaxUSD  float64  `json:"totalTaxUsd"`
	TotalTaxGYD  float64  `json:"totalTaxGyd"`
	TotalCostUSD float64  `json:"totalCostUsd"`
	TotalCostGYD float64  `json:"totalCostGyd"`
	DutyRate     float64  `json:"dutyRate"`
	ExciseRate   float64  `json:"exciseRate"`
	VATRate      float64  `json:"vatRate"`
	Formula      string   `json:"formula"`
	Notes        []string `json:"notes"`
}
