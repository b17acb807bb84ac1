package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karizzz/subletez-backend/internal/core"
	"github.com/karizzz/subletez-backend/internal/metrics"
	"github.com/karizzz/subletez-backend/internal/middleware"
	"github.com/karizzz/subletez-backend/internal/models"
)

// AuthHandler handles the sign-up, login and sign-out endpoints.
type AuthHandler struct {
	accounts core.AccountService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accounts core.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// SignUp handles POST /api/v1/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid sign-up payload", Details: err.Error()})
		return
	}

	user, err := h.accounts.SignUp(c.Request.Context(), req)
	if err != nil {
		metrics.IncSignUp("failure")
		c.JSON(authErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	metrics.IncSignUp("success")
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid login payload", Details: err.Error()})
		return
	}

	session, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.IncLogin("failure")
		c.JSON(authErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	metrics.IncLogin("success")
	c.JSON(http.StatusOK, session)
}

// SignOut handles POST /api/v1/auth/signout. Requires a verified token.
func (h *AuthHandler) SignOut(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user identity missing from context"})
		return
	}

	if err := h.accounts.SignOut(c.Request.Context(), uid); err != nil {
		c.JSON(authErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "signed out"})
}

// authErrorStatus maps the domain auth taxonomy onto HTTP status codes.
func authErrorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrEmailAlreadyInUse):
		return http.StatusConflict
	case errors.Is(err, core.ErrInvalidEmail), errors.Is(err, core.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrWrongPassword), errors.Is(err, core.ErrUserNotFound):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
