package vehicle

import (
	"context"

	"go.uber.org/zap"

	"gytax/internal/domain/ratetable"
	"gytax/internal/form"
	"gytax/internal/platform/logger"
)

const engineName = "vehicle"

type Observer interface {
	ObserveCalculation(engine, label string)
}

type Service struct {
	rates   *ratetable.Registry
	log     *zap.Logger
	metrics Observer
}

func NewService(rates *ratetable.Registry, log *zap.Logger, metrics Observer) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{rates: rates, log: log, metrics: metrics}
}

// Calculate parses values and prices the vehicle against year's tables.
func (s *Service) Calculate(ctx context.Context, year int, values form.Values) (Result, error) {
	set, err := s.rates.Get(year)
	if err != nil {
		return Result{}, err
	}
	r := ComputeDuty(ParseInput(values, set.Vehicle), set.Vehicle)

	if s.metrics != nil {
		s.metrics.ObserveCalculation(engineName, string(r.Rule))
	}
	logger.WithContext(ctx, s.log).Debug("vehicle duty calculated",
		zap.Int("fiscal_year", set.FiscalYear),
		zap.String("rule", string(r.Rule)),
		zap.Int("engine_cc", r.Input.EngineCC),
		zap.Float64("total_tax_gyd", r.TotalTaxGYD),
	)
	return r, nil
}
