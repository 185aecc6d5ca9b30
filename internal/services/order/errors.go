package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrDetailNotFound   = errors.New("order detail not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidDateRange = errors.New("invalid date range")
)
