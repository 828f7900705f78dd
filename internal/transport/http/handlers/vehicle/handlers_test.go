package vehiclehandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gytax/internal/domain/ratetable"
	"gytax/internal/domain/vehicle"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	rates, err := ratetable.NewRegistry(0, ratetable.Guyana2026())
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		NewHandler(vehicle.NewService(rates, nil, nil), rates, nil).RegisterRoutes(r)
	})
	return router
}

func post(t *testing.T, h http.Handler, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if out != nil && env.Success {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

func TestCalculateElectricIsExempt(t *testing.T) {
	rec := post(t, newRouter(t), "/api/v1/vehicle/calculate", "application/json",
		`{"cifUsd":30000,"category":"electric","fuel":"electric","engineCc":0}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result vehicle.Result
	decode(t, rec, &result)
	assert.Equal(t, vehicle.RuleElectric, result.Rule)
	assert.Zero(t, result.TotalTaxUSD)
	assert.InDelta(t, 30000*218, result.TotalCostGYD, 0.001)
}

func TestCalculateFromURLEncodedForm(t *testing.T) {
	rec := post(t, newRouter(t), "/api/v1/vehicle/calculate", "application/x-www-form-urlencoded",
		"cifUsd=10000&exchangeRate=220&age=4plus&category=car&fuel=gasoline&engineCc=1300&plate=private&specialRates=on")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result vehicle.Result
	decode(t, rec, &result)
	assert.Equal(t, vehicle.RuleAged, result.Rule)
	assert.Equal(t, 220.0, result.ExchangeRate)
	assert.InDelta(t, 800000, result.ExciseGYD, 0.001)
	assert.NotEmpty(t, result.Formula)
}

func TestCalculateUnknownYear(t *testing.T) {
	rec := post(t, newRouter(t), "/api/v1/vehicle/calculate?year=2001", "application/json", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_error", env.Error.Code)
}

func TestStatementReturnsPDF(t *testing.T) {
	rec := post(t, newRouter(t), "/api/v1/vehicle/statement", "application/json",
		`{"cifUsd":15000,"category":"double_cab","fuel":"diesel","engineCc":2400}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestOptions(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicle/options", nil)
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var options Options
	decode(t, rec, &options)
	assert.Equal(t, 2026, options.FiscalYear)
	assert.Equal(t, 218.0, options.DefaultExchangeRate)
	assert.Contains(t, options.Categories, vehicle.CategoryDoubleCab)
	assert.Len(t, options.Plates, 2)
}
