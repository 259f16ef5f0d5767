package address

import "errors"

var (
	ErrNameRequired   = errors.New("address name is required")
	ErrPhoneInvalid   = errors.New("phone number is invalid")
	ErrLine1Required  = errors.New("address line is required")
	ErrCityRequired   = errors.New("city is required")
	ErrPincodeInvalid = errors.New("pincode is invalid")

	ErrFailedFetchAddresses = errors.New("failed to fetch addresses")
	ErrFailedSaveAddress    = errors.New("failed to save address")
)
