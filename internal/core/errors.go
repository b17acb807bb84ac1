package core

import (
	"errors"
	"fmt"

	"github.com/karizzz/subletez-backend/internal/identity"
)

// Domain auth error taxonomy. The user-facing wording matches what the
// mobile client has always shown.
var (
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrWrongPassword     = errors.New("incorrect password")
	ErrUserNotFound      = errors.New("user not found")
	ErrWeakPassword      = errors.New("weak password, must be at least 6 characters")
	ErrAuthUnknown       = errors.New("authentication failed")
)

// MapProviderCode maps an identity-provider error code onto the domain
// taxonomy. It is total: every defined code maps to exactly one non-Unknown
// kind and anything else falls through to ErrAuthUnknown.
func MapProviderCode(code string) error {
	switch code {
	case identity.CodeEmailExists:
		return ErrEmailAlreadyInUse
	case identity.CodeInvalidEmail:
		return ErrInvalidEmail
	case identity.CodeInvalidPassword, identity.CodeInvalidLoginCredentials:
		return ErrWrongPassword
	case identity.CodeEmailNotFound, identity.CodeUserNotFound:
		return ErrUserNotFound
	case identity.CodeWeakPassword:
		return ErrWeakPassword
	default:
		return ErrAuthUnknown
	}
}

// mapProviderErr wraps a provider failure with its domain kind while keeping
// the provider detail in the chain.
func mapProviderErr(err error) error {
	return fmt.Errorf("%w: %v", MapProviderCode(identity.ErrorCode(err)), err)
}
