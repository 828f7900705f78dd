package payroll

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"gytax/internal/domain/ratetable"
	"gytax/internal/form"
	"gytax/internal/platform/logger"
)

const engineName = "payroll"

// Observer records completed calculations.
type Observer interface {
	ObserveCalculation(engine, label string)
}

// Service resolves the rate table for a fiscal year and runs the payroll
// engine against it.
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

func (s *Service) payrollRates(year int) (ratetable.Payroll, error) {
	set, err := s.rates.Get(year)
	if err != nil {
		return ratetable.Payroll{}, err
	}
	return set.Payroll, nil
}

// Calculate parses values and returns the full calculation for year.
func (s *Service) Calculate(ctx context.Context, year int, values form.Values) (Calculation, error) {
	rates, err := s.payrollRates(year)
	if err != nil {
		return Calculation{}, err
	}
	calc := Analyze(ParseInput(values), rates)
	s.observe(ctx, "calculate", calc.Result)
	return calc, nil
}

// Increase compares the parsed input before and after a percent raise.
func (s *Service) Increase(ctx context.Context, year int, values form.Values, percent float64) (Increase, error) {
	if percent <= -100 || percent > 1000 {
		return Increase{}, fmt.Errorf("%w: %v", ErrInvalidIncrease, percent)
	}
	rates, err := s.payrollRates(year)
	if err != nil {
		return Increase{}, err
	}
	inc := CompareIncrease(ParseInput(values), percent, rates)
	s.observe(ctx, "increase", inc.After)
	return inc, nil
}

// Result parses values and runs only the engine.
func (s *Service) Result(ctx context.Context, year int, values form.Values) (Result, error) {
	rates, err := s.payrollRates(year)
	if err != nil {
		return Result{}, err
	}
	r := ComputePayroll(ParseInput(values), rates)
	s.observe(ctx, "statement", r)
	return r, nil
}

func (s *Service) Frequencies(year int) ([]FrequencyOption, error) {
	rates, err := s.payrollRates(year)
	if err != nil {
		return nil, err
	}
	return lo.Map(ratetable.Frequencies, func(f ratetable.Frequency, _ int) FrequencyOption {
		cfg := rates.Frequency(f)
		return FrequencyOption{ID: f, Label: cfg.Label, PeriodLabel: cfg.PeriodLabel}
	}), nil
}

func (s *Service) Presets(year int) ([]ratetable.PositionPreset, error) {
	rates, err := s.payrollRates(year)
	if err != nil {
		return nil, err
	}
	return rates.Presets, nil
}

func (s *Service) IncreaseOptions(year int) ([]ratetable.IncreaseOption, error) {
	rates, err := s.payrollRates(year)
	if err != nil {
		return nil, err
	}
	return rates.IncreaseOptions, nil
}

// PresetInput returns a default input with presetID applied at frequency.
func (s *Service) PresetInput(ctx context.Context, year int, presetID string, frequency ratetable.Frequency) (Input, error) {
	rates, err := s.payrollRates(year)
	if err != nil {
		return Input{}, err
	}
	preset, ok := rates.Preset(presetID)
	if !ok {
		return Input{}, fmt.Errorf("%w: %s", ErrUnknownPreset, presetID)
	}
	in := ParseInput(form.Values{FieldFrequency: string(frequency)})
	in = ApplyPreset(in, preset, rates.Frequency(in.Frequency))
	logger.WithContext(ctx, s.log).Debug("preset applied",
		zap.String("preset", presetID),
		zap.String("frequency", string(in.Frequency)),
	)
	return in, nil
}

func (s *Service) observe(ctx context.Context, op string, r Result) {
	if s.metrics != nil {
		s.metrics.ObserveCalculation(engineName, string(r.Input.Frequency))
	}
	logger.WithContext(ctx, s.log).Debug("payroll calculated",
		zap.String("op", op),
		zap.String("frequency", string(r.Input.Frequency)),
		zap.Float64("gross", r.GrossIncome),
		zap.Float64("net", r.NetPay),
	)
}
