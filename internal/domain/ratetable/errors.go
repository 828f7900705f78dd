package ratetable

import "errors"

var (
	ErrNotFound = errors.New("rate table not found")
	ErrInvalid  = errors.New("rate table is invalid")
)
