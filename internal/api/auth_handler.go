package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"restaurant-pos/internal/auth"
	"restaurant-pos/internal/repository"
	"restaurant-pos/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	secret      []byte
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(authService *service.AuthService, secret []byte) *AuthHandler {
	return &AuthHandler{authService: authService, secret: secret}
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Login logs in a staff member --> POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	login := LoginRequest{}
	if err := c.Bind(&login); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	user, token, err := h.authService.Login(c.Request().Context(), login.Name, login.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(401, map[string]string{"error": err.Error()})
		}
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.JSON(200, LoginResponse{ID: user.ID, Name: user.Name, Token: token})
}

// CurrentUser decodes the bearer token --> GET /api/auth/current_user
// The route is public at the gate but fails here without a valid token.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	claims, err := auth.FromHeader(c.Request().Header.Get(echo.HeaderAuthorization), h.secret)
	if err != nil {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	return c.JSON(200, claims)
}

// GetUsers lists staff --> GET /api/user
func (h *AuthHandler) GetUsers(c echo.Context) error {
	users, err := h.authService.GetUsers(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.JSON(200, users)
}

// GetUser fetches one staff member --> GET /api/user/:id
func (h *AuthHandler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	user, err := h.authService.GetUserByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(404, map[string]string{"error": "User not found"})
		}
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.JSON(200, user)
}
