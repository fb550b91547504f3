package domain

import "errors"

var (
	ErrCustomerIDRequired = errors.New("customer id required")
	ErrFullNameRequired   = errors.New("full name required")
	ErrAddressRequired    = errors.New("address required")
	ErrPhoneRequired      = errors.New("phone required")
	ErrInvalidTotal       = errors.New("invalid order total")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidID          = errors.New("invalid id")
)
