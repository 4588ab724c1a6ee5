package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrRoleNotAllowed      = errors.New("role cannot be self-assigned")

	ErrTokenCreationFailed      = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid  = errors.New("token is expired or invalid")
	ErrTokenVerificationAborted = errors.New("token verification aborted")

	ErrAccessDenied       = errors.New("access denied")
	ErrProductUnavailable = errors.New("product is out of stock")
	ErrInvalidRetention   = errors.New("cart retention must be positive")
)
