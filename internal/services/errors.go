package services

import "errors"

var (
	ErrVendorNotFound          = errors.New("vendor not found")
	ErrListingNotFound         = errors.New("listing not found")
	ErrPartNotFound            = errors.New("part not found")
	ErrOutOfStock              = errors.New("listing is out of stock")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)
