// Package identity wraps the external identity provider behind a narrow
// client interface. The provider issues opaque subject IDs; nothing else
// about accounts is interpreted here. Provider failures are normalized to
// ProviderError values carrying the provider's error code so the account
// service can map them with a pure function.
package identity

import (
	"context"
	"errors"
	"fmt"
)

// Provider error codes. These are the Firebase Identity Toolkit codes; the
// admin SDK's errors are normalized onto the same space.
const (
	CodeEmailExists             = "EMAIL_EXISTS"
	CodeInvalidEmail            = "INVALID_EMAIL"
	CodeInvalidPassword         = "INVALID_PASSWORD"
	CodeInvalidLoginCredentials = "INVALID_LOGIN_CREDENTIALS"
	CodeEmailNotFound           = "EMAIL_NOT_FOUND"
	CodeUserNotFound            = "USER_NOT_FOUND"
	CodeWeakPassword            = "WEAK_PASSWORD"
)

// ProviderError is a failure reported by the identity provider.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("identity provider error: %s", e.Code)
	}
	return fmt.Sprintf("identity provider error: %s: %s", e.Code, e.Message)
}

// ErrorCode extracts the provider code from an error chain. It returns an
// empty string when the error did not originate from the provider.
func ErrorCode(err error) string {
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		return provErr.Code
	}
	return ""
}

// Session is the provider-issued session material returned by a successful
// password sign-in. It is handed to the caller verbatim; no local session
// state is kept.
type Session struct {
	UID          string `json:"uid"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	UID   string
	Email string
}

// Client is the identity provider surface the rest of the application
// depends on.
type Client interface {
	// CreateUser provisions a new email/password account and returns the
	// provider-assigned subject ID.
	CreateUser(ctx context.Context, email, password string) (string, error)
	// SignIn validates credentials and returns session material.
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// DeleteUser removes an account. Used as the compensating action when
	// sign-up fails after the account was created.
	DeleteUser(ctx context.Context, uid string) error
	// RevokeSessions invalidates the account's refresh tokens.
	RevokeSessions(ctx context.Context, uid string) error
	// VerifyToken checks a bearer token and returns its claims.
	VerifyToken(ctx context.Context, idToken string) (*TokenClaims, error)
}
