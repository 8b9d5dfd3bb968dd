package invoice

import "errors"

var (
	ErrNotFound            = errors.New("invoice not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrOverfunded          = errors.New("amount exceeds remaining funding goal")
	ErrAlreadyRepaid       = errors.New("invoice already repaid")
	ErrInsufficientBalance = errors.New("wallet balance below invoice face amount")
)
