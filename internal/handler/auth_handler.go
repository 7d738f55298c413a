package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an account and returns the user with a signed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration data"
// @Success      201 {object} dto.AuthResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "Error registering user")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns the user with a signed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.AuthResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "Error logging in")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCurrentUser godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.UserResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /auth [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Error fetching user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the presented token until its natural expiry
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.MessageResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, ok := extractUserID(c); !ok {
		return
	}

	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		handleServiceError(c, err, "Error logging out")
		return
	}

	response.SendMessage(c, http.StatusOK, "Logged out")
}
