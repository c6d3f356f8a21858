package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	// ErrInvalidCredentials deliberately does not say whether the username or
	// the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNoURLProvided     = errors.New("no url provided")
	ErrNoAddressProvided = errors.New("no address provided")
	ErrNoQuestionAsked   = errors.New("no question asked")

	ErrMissingPayloadKey = errors.New("payload is missing the expected top-level key")
)
