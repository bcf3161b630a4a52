package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"taskhive/internal/auth"
	"taskhive/internal/middleware"
	"taskhive/internal/model"
	"taskhive/internal/service"
)

// AuthHandler handles the signup and login endpoints. These keep the plain
// text bodies of the legacy surface that existing clients depend on.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup request body.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest represents a login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce plain
// @Param request body SignupRequest true "Signup data"
// @Success 200 {string} string "User Added"
// @Failure 400 {string} string
// @Router /addUser [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Error saving the user: invalid request body")
	}

	_, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		return c.String(http.StatusBadRequest, "Error saving the user: "+err.Error())
	}

	return c.String(http.StatusOK, "User Added")
}

// Login godoc
// @Summary Login and receive a session cookie
// @Tags auth
// @Accept json
// @Produce plain
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {string} string "Login Successfull !!"
// @Failure 400 {string} string
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Error logging in: invalid request body")
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return c.String(http.StatusBadRequest, "Error logging in: "+err.Error())
	}

	// Cookie expiry and token expiry derive from the same constant.
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(auth.SessionTTL),
		Path:     "/",
		HttpOnly: true,
	})

	return c.String(http.StatusOK, "Login Successfull !!")
}
