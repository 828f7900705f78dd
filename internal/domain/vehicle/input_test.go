package vehicle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"gytax/internal/form"
)

func TestParseInputDefaults(t *testing.T) {
	in := ParseInput(form.Values{}, rates2026())

	assert.Equal(t, AgeUnder4, in.Age)
	assert.Equal(t, CategoryCar, in.Category)
	assert.Equal(t, FuelGasoline, in.Fuel)
	assert.Equal(t, PlatePrivate, in.Plate)
	assert.Equal(t, 218.0, in.ExchangeRate)
	assert.False(t, in.Dealer)
	assert.True(t, in.SpecialRates)
	assert.Zero(t, in.CIFUSD)
	assert.Zero(t, in.EngineCC)
}

func TestParseInputReadsFields(t *testing.T) {
	in := ParseInput(form.Values{
		FieldCIF:          "18500.50",
		FieldExchangeRate: "210",
		FieldAge:          "4plus",
		FieldCategory:     "double_cab",
		FieldFuel:         "diesel",
		FieldEngineCC:     "2400",
		FieldPlate:        "government",
		FieldDealer:       "on",
		FieldSpecialRates: false,
	}, rates2026())

	assert.Equal(t, 18500.5, in.CIFUSD)
	assert.Equal(t, 210.0, in.ExchangeRate)
	assert.Equal(t, AgeAged, in.Age)
	assert.Equal(t, CategoryDoubleCab, in.Category)
	assert.Equal(t, FuelDiesel, in.Fuel)
	assert.Equal(t, 2400, in.EngineCC)
	assert.Equal(t, PlateGovernment, in.Plate)
	assert.True(t, in.Dealer)
	assert.False(t, in.SpecialRates)
}

func TestParseInputGarbage(t *testing.T) {
	in := ParseInput(form.Values{
		FieldCIF:          "lots",
		FieldExchangeRate: "0",
		FieldCategory:     "hovercraft",
		FieldEngineCC:     "big",
	}, rates2026())

	assert.Zero(t, in.CIFUSD)
	assert.Equal(t, 218.0, in.ExchangeRate)
	assert.Equal(t, CategoryCar, in.Category)
	assert.Zero(t, in.EngineCC)
}

func TestParseInputHugeDisplacementUsesLastBracket(t *testing.T) {
	in := ParseInput(form.Values{
		FieldCIF:      "10000",
		FieldAge:      "4plus",
		FieldEngineCC: "1e20",
	}, rates2026())
	assert.Equal(t, math.MaxInt32, in.EngineCC)

	r := ComputeDuty(in, rates2026())
	assert.Equal(t, RuleAged, r.Rule)
	assert.InDelta(t, (10000+14500)*1.0+14500, r.ExciseUSD, delta)
}
