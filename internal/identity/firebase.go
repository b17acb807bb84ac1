package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
)

const defaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// firebaseClient implements Client on Firebase Auth. Account management and
// token verification go through the Admin SDK; password sign-in is not part
// of the Admin SDK, so it calls the Identity Toolkit REST endpoint with the
// project's web API key.
type firebaseClient struct {
	authClient *auth.Client
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewFirebaseClient creates a Client backed by Firebase Auth.
func NewFirebaseClient(authClient *auth.Client, webAPIKey string) Client {
	return &firebaseClient{
		authClient: authClient,
		apiKey:     webAPIKey,
		baseURL:    defaultIdentityToolkitURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *firebaseClient) CreateUser(ctx context.Context, email, password string) (string, error) {
	// The SDK enforces the same floor client-side but reports it as a bare
	// validation error; checking here keeps the failure on the provider code
	// space before any account is provisioned.
	if len(password) < 6 {
		return "", &ProviderError{Code: CodeWeakPassword, Message: "password must be at least 6 characters"}
	}

	params := (&auth.UserToCreate{}).Email(email).Password(password)
	record, err := c.authClient.CreateUser(ctx, params)
	if err != nil {
		return "", normalizeAdminErr(err)
	}
	return record.UID, nil
}

func (c *firebaseClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	reqBody, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal sign-in request: %w", err)
	}

	url := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity toolkit request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read identity toolkit response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseRESTError(body)
	}

	var payload struct {
		LocalID      string `json:"localId"`
		IDToken      string `json:"idToken"`
		RefreshToken string `json:"refreshToken"`
		ExpiresIn    string `json:"expiresIn"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode identity toolkit response: %w", err)
	}

	expires, _ := strconv.ParseInt(payload.ExpiresIn, 10, 64)
	return &Session{
		UID:          payload.LocalID,
		IDToken:      payload.IDToken,
		RefreshToken: payload.RefreshToken,
		ExpiresIn:    expires,
	}, nil
}

func (c *firebaseClient) DeleteUser(ctx context.Context, uid string) error {
	if err := c.authClient.DeleteUser(ctx, uid); err != nil {
		return normalizeAdminErr(err)
	}
	return nil
}

func (c *firebaseClient) RevokeSessions(ctx context.Context, uid string) error {
	if err := c.authClient.RevokeRefreshTokens(ctx, uid); err != nil {
		return normalizeAdminErr(err)
	}
	return nil
}

func (c *firebaseClient) VerifyToken(ctx context.Context, idToken string) (*TokenClaims, error) {
	token, err := c.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, normalizeAdminErr(err)
	}
	claims := &TokenClaims{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	return claims, nil
}

// normalizeAdminErr maps Admin SDK errors onto the provider code space.
// The SDK validates email/password shape client-side and returns bare
// errors for those, so the message is inspected as a fallback.
func normalizeAdminErr(err error) error {
	msg := err.Error()
	switch {
	case auth.IsEmailAlreadyExists(err):
		return &ProviderError{Code: CodeEmailExists, Message: msg}
	case auth.IsUserNotFound(err):
		return &ProviderError{Code: CodeUserNotFound, Message: msg}
	case strings.Contains(msg, "malformed email"):
		return &ProviderError{Code: CodeInvalidEmail, Message: msg}
	case strings.Contains(msg, "password must be"):
		return &ProviderError{Code: CodeWeakPassword, Message: msg}
	default:
		return &ProviderError{Code: "", Message: msg}
	}
}

// parseRESTError extracts the provider code from an Identity Toolkit error
// body. The message field sometimes carries explanatory text after the code
// ("WEAK_PASSWORD : Password should be at least 6 characters"), so only the
// leading token is the code.
func parseRESTError(body []byte) error {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error.Message == "" {
		return &ProviderError{Code: "", Message: string(body)}
	}

	code, rest, _ := strings.Cut(payload.Error.Message, ":")
	return &ProviderError{
		Code:    strings.TrimSpace(code),
		Message: strings.TrimSpace(rest),
	}
}
