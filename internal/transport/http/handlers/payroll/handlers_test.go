package payrollhandler

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

	"gytax/internal/domain/payroll"
	"gytax/internal/domain/ratetable"
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
		NewHandler(payroll.NewService(rates, nil, nil), rates, nil).RegisterRoutes(r)
	})
	return router
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestCalculateJSON(t *testing.T) {
	router := newRouter(t)
	rec, env := do(t, router, http.MethodPost, "/api/v1/payroll/calculate", "application/json",
		`{"frequency":"monthly","baseSalary":"350,000","taxableAllowances":20000,"children":2,"insurancePlan":"employee"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.True(t, env.Success)

	var data struct {
		FiscalYear  int                  `json:"fiscalYear"`
		Input       payroll.Input        `json:"input"`
		Result      payroll.Result       `json:"result"`
		Projections []payroll.Projection `json:"projections"`
		CashFlow    []float64            `json:"cashFlow"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2026, data.FiscalYear)
	assert.Equal(t, 350000.0, data.Input.BaseSalary)
	assert.Equal(t, 22.5, data.Input.GratuityRate)
	assert.Greater(t, data.Result.NetPay, 0.0)
	assert.Less(t, data.Result.NetPay, data.Result.GrossIncome)
	assert.Len(t, data.Projections, 4)
	assert.Len(t, data.CashFlow, 12)
}

func TestCalculateURLEncodedMatchesJSON(t *testing.T) {
	router := newRouter(t)
	_, fromJSON := do(t, router, http.MethodPost, "/api/v1/payroll/calculate", "application/json",
		`{"frequency":"weekly","baseSalary":60000,"overtimeIncome":5000}`)
	_, fromForm := do(t, router, http.MethodPost, "/api/v1/payroll/calculate", "application/x-www-form-urlencoded",
		"frequency=weekly&baseSalary=60000&overtimeIncome=5000")

	assert.JSONEq(t, string(fromJSON.Data), string(fromForm.Data))
}

func TestCalculateUnknownYear(t *testing.T) {
	rec, env := do(t, newRouter(t), http.MethodPost, "/api/v1/payroll/calculate?year=1999", "application/json", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_error", env.Error.Code)
}

func TestCalculateMalformedBody(t *testing.T) {
	rec, env := do(t, newRouter(t), http.MethodPost, "/api/v1/payroll/calculate", "application/json", `{"baseSalary":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalid_body", env.Error.Code)
}

func TestIncrease(t *testing.T) {
	router := newRouter(t)
	rec, env := do(t, router, http.MethodPost, "/api/v1/payroll/increase", "application/json",
		`{"baseSalary":300000,"percent":"10%"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var inc payroll.Increase
	require.NoError(t, json.Unmarshal(env.Data, &inc))
	assert.Equal(t, 10.0, inc.Percent)
	assert.InDelta(t, 30000, inc.BaseSalaryChange, 0.001)
	assert.Greater(t, inc.NetPayChange, 0.0)
}

func TestIncreaseValidation(t *testing.T) {
	router := newRouter(t)
	for _, body := range []string{`{"baseSalary":300000}`, `{"percent":-100}`, `{"percent":5000}`, `{"percent":"ten"}`} {
		rec, env := do(t, router, http.MethodPost, "/api/v1/payroll/increase", "application/json", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.NotNil(t, env.Error, body)
		assert.Equal(t, "validation_error", env.Error.Code, body)
	}
}

func TestStatementReturnsPDF(t *testing.T) {
	rec, _ := do(t, newRouter(t), http.MethodPost, "/api/v1/payroll/statement", "application/json",
		`{"position":"Accountant","baseSalary":280000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payroll-statement.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestFrequencies(t *testing.T) {
	rec, env := do(t, newRouter(t), http.MethodGet, "/api/v1/payroll/frequencies", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var options []payroll.FrequencyOption
	require.NoError(t, json.Unmarshal(env.Data, &options))
	require.Len(t, options, 5)
	assert.Equal(t, ratetable.FrequencyDaily, options[0].ID)
	assert.Equal(t, ratetable.FrequencyYearly, options[4].ID)
}

func TestIncreaseOptions(t *testing.T) {
	rec, env := do(t, newRouter(t), http.MethodGet, "/api/v1/payroll/increase-options", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var options []ratetable.IncreaseOption
	require.NoError(t, json.Unmarshal(env.Data, &options))
	assert.Len(t, options, 5)
}

func TestPresetAppliedAtFrequency(t *testing.T) {
	router := newRouter(t)
	rec, env := do(t, router, http.MethodGet, "/api/v1/payroll/presets/ict-tech-1?frequency=yearly", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data presetResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "ict-tech-1", data.Preset.ID)
	assert.Equal(t, ratetable.FrequencyYearly, data.Input.Frequency)
	assert.Equal(t, 308540.0*12, data.Input.BaseSalary)
}

func TestPresetErrors(t *testing.T) {
	router := newRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/v1/payroll/presets/nobody", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "preset_not_found", env.Error.Code)

	rec, _ = do(t, router, http.MethodGet, "/api/v1/payroll/presets/ict-tech-1?frequency=hourly", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
