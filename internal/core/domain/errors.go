package domain

import "errors"

// Catalog errors
var (
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateISBN = errors.New("duplicate isbn")
)

// Payment gateway errors
var (
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrGatewayRejected    = errors.New("payment gateway rejected request")
	ErrGatewayPanic       = errors.New("payment gateway panicked")
)
