package adapter

import "errors"

var (
	// ErrAddressNotFound is returned when the geocoding service has no match
	// for the requested address.
	ErrAddressNotFound = errors.New("address not found")
	// ErrGeocodeFailed is returned when the geocoding service could not be
	// reached or answered with an error status.
	ErrGeocodeFailed = errors.New("geocoding request failed")
	// ErrExpertFailed is returned when the advice service could not be reached
	// or answered with an error status.
	ErrExpertFailed = errors.New("expert request failed")
	// ErrEmptyCompletion is returned when the advice service answered without
	// any choices.
	ErrEmptyCompletion = errors.New("expert returned an empty completion")
)
