package shared

import (
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gytax/internal/domain/ratetable"
	"gytax/internal/platform/logger"
	"gytax/internal/requestctx"
	"gytax/internal/transport/http/api"
)

// FailError maps err onto an error envelope. Errors it does not recognise
// are logged and reported as 500 without detail.
func FailError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	requestID := requestctx.GetRequestID(r.Context())
	switch {
	case errors.Is(err, ratetable.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, ErrBodyTooLarge):
		api.Fail(w, http.StatusRequestEntityTooLarge, "body_too_large", err.Error(), requestID)
	case errors.Is(err, ErrBadBody):
		api.Fail(w, http.StatusBadRequest, "invalid_body", err.Error(), requestID)
	default:
		logger.WithContext(r.Context(), log).Error("request failed", zap.Error(err))
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
	}
}

// FiscalYear reads the optional year query parameter. Zero selects the
// registry's default year.
func FiscalYear(v *Validator, r *http.Request, rates *ratetable.Registry) int {
	year := v.Int("year", r.URL.Query().Get("year"), 0)
	if year != 0 && !rates.Has(year) {
		v.Add("year", "unknown fiscal year")
	}
	return year
}
