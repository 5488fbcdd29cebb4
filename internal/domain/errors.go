package domain

import "errors"

var (
	ErrEmptyName          = errors.New("name must not be empty")
	ErrNegativeQuantity   = errors.New("quantity must not be negative")
	ErrDuplicateWarehouse = errors.New("warehouse listed more than once")
	ErrUnknownPolicy      = errors.New("unknown commit policy")
	ErrUnknownOperation   = errors.New("unknown journal operation")
)
