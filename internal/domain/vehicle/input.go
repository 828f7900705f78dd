package vehicle

import (
	"gytax/internal/domain/ratetable"
	"gytax/internal/form"
)

// Form field names accepted by ParseInput.
const (
	FieldCIF          = "cifUsd"
	FieldExchangeRate = "exchangeRate"
	FieldAge          = "age"
	FieldCategory     = "category"
	FieldFuel         = "fuel"
	FieldEngineCC     = "engineCc"
	FieldPlate        = "plate"
	FieldDealer       = "dealer"
	FieldSpecialRates = "specialRates"
)

// ParseInput builds an Input from raw form values, defaulting each field
// once. Special rates stay on unless the form explicitly turns them off.
func ParseInput(v form.Values, rates ratetable.Vehicle) Input {
	in := Input{
		CIFUSD:       v.Float(FieldCIF),
		ExchangeRate: v.Float(FieldExchangeRate),
		Age:          AgeClass(v.String(FieldAge)),
		Category:     Category(v.String(FieldCategory)),
		Fuel:         FuelClass(v.String(FieldFuel)),
		EngineCC:     v.Int(FieldEngineCC),
		Plate:        PlateType(v.String(FieldPlate)),
		Dealer:       v.Bool(FieldDealer, false),
		SpecialRates: v.Bool(FieldSpecialRates, true),
	}
	return normalize(in, rates)
}
