// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"net/http"
	"time"

	"schoolhub/internal/delivery/api/response"
	"schoolhub/internal/domain/entity"
	"schoolhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginRequest is the body of every login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthHandler serves the login endpoints of each account kind.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// LoginPrincipal handles POST /auth/login.
func (h *AuthHandler) LoginPrincipal(c echo.Context) error {
	return h.login(c, entity.RolePrincipal)
}

// LoginTeacher handles POST /auth/teacher/login.
func (h *AuthHandler) LoginTeacher(c echo.Context) error {
	return h.login(c, entity.RoleTeacher)
}

// LoginStudent handles POST /auth/student/login.
func (h *AuthHandler) LoginStudent(c echo.Context) error {
	return h.login(c, entity.RoleStudent)
}

func (h *AuthHandler) login(c echo.Context, role entity.Role) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Role:     role,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresAt:   output.ExpiresAt,
	})
}
