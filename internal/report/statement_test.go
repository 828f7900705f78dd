package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gytax/internal/domain/payroll"
	"gytax/internal/domain/ratetable"
	"gytax/internal/domain/vehicle"
)

func TestPayrollStatementRendersPDF(t *testing.T) {
	rates := ratetable.Guyana2026().Payroll
	r := payroll.ComputePayroll(payroll.Input{
		Position:          "Accountant",
		Frequency:         ratetable.FrequencyMonthly,
		BaseSalary:        350000,
		TaxableAllowances: 20000,
		Children:          2,
		InsurancePlan:     ratetable.InsuranceEmployee,
		GratuityRate:      22.5,
	}, rates)

	out, err := PayrollStatement(r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "%%EOF")
}

func TestVehicleStatementHandlesNonLatinNotes(t *testing.T) {
	rates := ratetable.Guyana2026().Vehicle
	r := vehicle.ComputeDuty(vehicle.Input{
		CIFUSD:       15000,
		ExchangeRate: 218,
		Age:          vehicle.AgeUnder4,
		Category:     vehicle.CategoryDoubleCab,
		Fuel:         vehicle.FuelDiesel,
		EngineCC:     2400,
		Plate:        vehicle.PlatePrivate,
		SpecialRates: true,
	}, rates)
	require.NotEmpty(t, r.Notes)

	out, err := VehicleStatement(r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestVehicleStatementWithoutNotes(t *testing.T) {
	out, err := VehicleStatement(vehicle.Result{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
