package api

import (
	"net/http"
	"time"

	reqdto "parking-allocator/internal/handler/dto/request"
	resdto "parking-allocator/internal/handler/dto/response"
	"parking-allocator/internal/handler/middleware"
	"parking-allocator/internal/pkg/config"
	"parking-allocator/internal/pkg/cookie"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase   usecase.AuthUseCase
	cookieCfg     config.CookieConfig
	tokenDuration time.Duration
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		duration = 24 * time.Hour
	}
	return &AuthHandler{
		authUseCase:   authUseCase,
		cookieCfg:     cfg.Cookie,
		tokenDuration: duration,
	}
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	token, u, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrInvalidCredentials),
			errs.Is(err, usecase.ErrUserNotFound),
			errs.Is(err, usecase.ErrUserDeleted):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, token, h.tokenDuration)

	response := resdto.LoginResponse{
		AccessToken: token,
		User:        resdto.NewUserResponse(u),
	}
	c.JSON(http.StatusOK, response)
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	u, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrUserNotFound), errs.Is(err, usecase.ErrUserDeleted):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewUserResponse(u))
}
