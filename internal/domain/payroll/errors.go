package payroll

import "errors"

var (
	ErrUnknownPreset   = errors.New("position preset not found")
	ErrInvalidIncrease = errors.New("increase percent out of range")
)
