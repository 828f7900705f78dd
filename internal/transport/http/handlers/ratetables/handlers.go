package ratetableshandler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gytax/internal/domain/ratetable"
	"gytax/internal/transport/http/api"
	"gytax/internal/transport/http/middleware"
	"gytax/internal/transport/http/shared"
)

type Handler struct {
	Rates *ratetable.Registry
	Log   *zap.Logger
}

func NewHandler(rates *ratetable.Registry, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Rates: rates, Log: log}
}

type Summary struct {
	FiscalYear int    `json:"fiscalYear"`
	Name       string `json:"name"`
	Default    bool   `json:"default"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/rate-tables", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{year}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	defaultYear := h.Rates.DefaultYear()
	summaries := make([]Summary, 0)
	for _, year := range h.Rates.Years() {
		set, err := h.Rates.Get(year)
		if err != nil {
			continue
		}
		summaries = append(summaries, Summary{
			FiscalYear: set.FiscalYear,
			Name:       set.Name,
			Default:    year == defaultYear,
		})
	}
	api.Success(w, summaries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	year := v.Int("year", chi.URLParam(r, "year"), 0)
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	v.Enum("format", format, []string{"json", "yaml"}, "must be json or yaml")
	if v.Reject(w, requestID) {
		return
	}

	set, err := h.Rates.Get(year)
	if err != nil {
		shared.FailError(w, r, h.Log, err)
		return
	}
	if format != "yaml" {
		api.Success(w, set, requestID)
		return
	}

	out, err := ratetable.EncodeYAML(set)
	if err != nil {
		shared.FailError(w, r, h.Log, err)
		return
	}
	api.Attachment(w, "application/yaml", strconv.Itoa(set.FiscalYear)+".yaml", out)
}
