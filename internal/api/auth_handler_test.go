package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/karizzz/subletez-backend/internal/core"
	"github.com/karizzz/subletez-backend/internal/identity"
	"github.com/karizzz/subletez-backend/internal/models"
)

// fakeAccountService returns canned results for the auth endpoints.
type fakeAccountService struct {
	signUpErr error
	loginErr  error
}

func (f *fakeAccountService) SignUp(_ context.Context, req models.SignUpRequest) (*models.User, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &models.User{ID: "uid-123", Name: req.Name, Email: req.Email}, nil
}

func (f *fakeAccountService) Login(_ context.Context, _, _ string) (*identity.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &identity.Session{UID: "uid-123", IDToken: "tok", RefreshToken: "ref", ExpiresIn: 3600}, nil
}

func (f *fakeAccountService) SignOut(_ context.Context, _ string) error {
	return nil
}

func newAuthRouter(svc core.AccountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAuthHandler(svc)
	router.POST("/signup", handler.SignUp)
	router.POST("/login", handler.Login)
	return router
}

func validSignUpBody() map[string]interface{} {
	return map[string]interface{}{
		"email":    "a@b.com",
		"password": "secret-pass",
		"name":     "Akshay",
		"school":   "UofT",
		"age":      21,
		"phone":    "555-0100",
		"sex":      "Male",
	}
}

func TestSignUpSuccessReturns201(t *testing.T) {
	resp := postJSON(t, newAuthRouter(&fakeAccountService{}), "/signup", validSignUpBody())
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestSignUpShortPasswordFailsBinding(t *testing.T) {
	body := validSignUpBody()
	body["password"] = "short"

	resp := postJSON(t, newAuthRouter(&fakeAccountService{}), "/signup", body)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSignUpErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{core.ErrEmailAlreadyInUse, http.StatusConflict},
		{core.ErrInvalidEmail, http.StatusBadRequest},
		{core.ErrWeakPassword, http.StatusBadRequest},
		{core.ErrAuthUnknown, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		router := newAuthRouter(&fakeAccountService{signUpErr: tc.err})
		resp := postJSON(t, router, "/signup", validSignUpBody())
		assert.Equal(t, tc.want, resp.Code, "error %v", tc.err)
	}
}

func TestLoginErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{core.ErrWrongPassword, http.StatusUnauthorized},
		{core.ErrUserNotFound, http.StatusUnauthorized},
		{core.ErrAuthUnknown, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		router := newAuthRouter(&fakeAccountService{loginErr: tc.err})
		resp := postJSON(t, router, "/login", map[string]interface{}{
			"email":    "a@b.com",
			"password": "secret-pass",
		})
		assert.Equal(t, tc.want, resp.Code, "error %v", tc.err)
	}
}

func TestLoginSuccessReturnsSession(t *testing.T) {
	resp := postJSON(t, newAuthRouter(&fakeAccountService{}), "/login", map[string]interface{}{
		"email":    "a@b.com",
		"password": "secret-pass",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"idToken":"tok"`)
}
