package vehiclehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gytax/internal/domain/ratetable"
	"gytax/internal/domain/vehicle"
	"gytax/internal/report"
	"gytax/internal/transport/http/api"
	"gytax/internal/transport/http/middleware"
	"gytax/internal/transport/http/shared"
)

type Handler struct {
	Service *vehicle.Service
	Rates   *ratetable.Registry
	Log     *zap.Logger
}

func NewHandler(service *vehicle.Service, rates *ratetable.Registry, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Service: service, Rates: rates, Log: log}
}

// Options lists the accepted enum values and the default exchange rate so
// a client can build the calculator form.
type Options struct {
	FiscalYear          int                 `json:"fiscalYear"`
	DefaultExchangeRate float64             `json:"defaultExchangeRate"`
	Ages                []vehicle.AgeClass  `json:"ages"`
	Categories          []vehicle.Category  `json:"categories"`
	Fuels               []vehicle.FuelClass `json:"fuels"`
	Plates              []vehicle.PlateType `json:"plates"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/vehicle", func(r chi.Router) {
		r.Get("/options", h.handleOptions)
		r.Post("/calculate", h.handleCalculate)
		r.Post("/statement", h.handleStatement)
	})
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	year := shared.FiscalYear(v, r, h.Rates)
	if v.Reject(w, requestID) {
		return
	}
	set, err := h.Rates.Get(year)
	if err != nil {
		shared.FailError(w, r, h.Log, err)
		return
	}
	api.Success(w, Options{
		FiscalYear:          set.FiscalYear,
		DefaultExchangeRate: set.Vehicle.DefaultExchangeRate,
		Ages:                vehicle.AgeClasses,
		Categories:          vehicle.Categories,
		Fuels:               vehicle.FuelClasses,
		Plates:              vehicle.PlateTypes,
	}, requestID)
}

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) (vehicle.Result, bool) {
	requestID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	year := shared.FiscalYear(v, r, h.Rates)
	if v.Reject(w, requestID) {
		return vehicle.Result{}, false
	}
	values, err := shared.DecodeForm(r)
	if err != nil {
		shared.FailError(w, r, h.Log, err)
		return vehicle.Result{}, false
	}
	result, err := h.Service.Calculate(r.Context(), year, values)
	if err != nil {
		shared.FailError(w, r, h.Log, err)
		return vehicle.Result{}, false
	}
	return result, true
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	result, ok := h.calculate(w, r)
	if !ok {
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStatement(w http.ResponseWriter, r *http.Request) {
	result, ok := h.calculate(w, r)
	if !ok {
		return
	}
	pdf, err := report.VehicleStatement(result)
	if err != nil {
		shared.FailError(w, r, h.Log, err)
		return
	}
	api.Attachment(w, "application/pdf", "vehicle-duty.pdf", pdf)
}
