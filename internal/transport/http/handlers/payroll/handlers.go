package payrollhandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"gytax/internal/domain/payroll"
	"gytax/internal/domain/ratetable"
	"gytax/internal/report"
	"gytax/internal/transport/http/api"
	"gytax/internal/transport/http/middleware"
	"gytax/internal/transport/http/shared"
)

const fieldPercent = "percent"

type Handler struct {
	Service *payroll.Service
	Rates   *ratetable.Registry
	Log     *zap.Logger
}

func NewHandler(service *payroll.Service, rates *ratetable.Registry, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Service: service, Rates: rates, Log: log}
}

type calculateResponse struct {
	FiscalYear int           `json:"fiscalYear"`
	Input      payroll.Input `json:"input"`
	payroll.Calculation
}

type presetResponse struct {
	Preset ratetable.PositionPreset `json:"preset"`
	Input  payroll.Input            `json:"input"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/calculate", h.handleCalculate)
		r.Post("/increase", h.handleIncrease)
		r.Post("/statement", h.handleStatement)
		r.Get("/frequencies", h.handleFrequencies)
		r.Get("/increase-options", h.handleIncreaseOptions)
		r.Get("/presets", h.handlePresets)
		r.Get("/presets/{presetID}", h.handlePreset)
	})
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	year := shared.FiscalYear(v, r, h.Rates)
	if v.Reject(w, requestID) {
		return
	}
	values, err := shared.DecodeForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	calc, err := h.Service.Calculate(r.Context(), year, values)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, calculateResponse{
		FiscalYear:  h.resolvedYear(year),
		Input:       calc.Result.Input,
		Calculation: calc,
	}, requestID)
}

func (h *Handler) handleIncrease(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	year := shared.FiscalYear(v, r, h.Rates)
	if v.Reject(w, requestID) {
		return
	}
	values, err := shared.DecodeForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	raw := values.String(fieldPercent)
	if raw == "" {
		raw = r.URL.Query().Get(fieldPercent)
	}
	percent := v.Float(fieldPercent, strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if !v.HasIssues() {
		v.Range(fieldPercent, percent, -100, 1000)
	}
	if v.Reject(w, requestID) {
		return
	}

	inc, err := h.Service.Increase(r.Context(), year, values, percent)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, inc, requestID)
}

func (h *Handler) handleStatement(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	year := shared.FiscalYear(v, r, h.Rates)
	if v.Reject(w, requestID) {
		return
	}
	values, err := shared.DecodeForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	result, err := h.Service.Result(r.Context(), year, values)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	pdf, err := report.PayrollStatement(result)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Attachment(w, "application/pdf", "payroll-statement.pdf", pdf)
}

func (h *Handler) handleFrequencies(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, func(year int) (any, error) { return h.Service.Frequencies(year) })
}

func (h *Handler) handleIncreaseOptions(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, func(year int) (any, error) { return h.Service.IncreaseOptions(year) })
}

func (h *Handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, func(year int) (any, error) { return h.Service.Presets(year) })
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, load func(year int) (any, error)) {
	requestID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	year := shared.FiscalYear(v, r, h.Rates)
	if v.Reject(w, requestID) {
		return
	}
	items, err := load(year)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, items, requestID)
}

func (h *Handler) handlePreset(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	year := shared.FiscalYear(v, r, h.Rates)
	frequency := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("frequency")))
	v.Enum("frequency", frequency, lo.Map(ratetable.Frequencies, func(f ratetable.Frequency, _ int) string {
		return string(f)
	}), "must be one of daily, weekly, fortnightly, monthly, yearly")
	if v.Reject(w, requestID) {
		return
	}

	presetID := chi.URLParam(r, "presetID")
	in, err := h.Service.PresetInput(r.Context(), year, presetID, ratetable.Frequency(frequency))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	presets, err := h.Service.Presets(year)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	preset, _ := lo.Find(presets, func(p ratetable.PositionPreset) bool { return p.ID == presetID })
	api.Success(w, presetResponse{Preset: preset, Input: in}, requestID)
}

func (h *Handler) resolvedYear(year int) int {
	if year != 0 {
		return year
	}
	return h.Rates.DefaultYear()
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, payroll.ErrUnknownPreset):
		api.Fail(w, http.StatusNotFound, "preset_not_found", err.Error(), requestID)
	case errors.Is(err, payroll.ErrInvalidIncrease):
		api.Fail(w, http.StatusBadRequest, "invalid_increase", err.Error(), requestID)
	default:
		shared.FailError(w, r, h.Log, err)
	}
}
