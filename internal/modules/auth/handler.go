package auth

import (
	"errors"
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
	cookies *CookieWriter
}

// NewHandler creates a new auth handler with injected service
func NewHandler(service *Service, cookies *CookieWriter) *Handler {
	return &Handler{
		service: service,
		cookies: cookies,
	}
}

// Signup registers a new customer and opens a session.
// Non-conflict failures (validation, issuance, persistence) all ride
// the same 401 path with the underlying message, which is what the
// public API contract pins down.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	user, pair, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusBadRequest, "User Already Exists")
			return
		}
		response.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	h.cookies.SetSession(c, pair.AccessToken, pair.RefreshToken)

	response.WithData(c, http.StatusCreated, "User created Successfully", gin.H{
		"user": summarize(user),
	})
}

// Login authenticates by email/password and opens a session.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, pair, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingEmail):
			response.Error(c, http.StatusBadRequest, "Email is necessary")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusForbidden, "Incorrect password or email, Please Try Again")
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.cookies.SetSession(c, pair.AccessToken, pair.RefreshToken)

	response.WithData(c, http.StatusCreated, "User logged in Successfully", gin.H{
		"user": summarize(user),
	})
}

// Logout revokes the stored refresh token and clears both cookies.
func (h *Handler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		response.Error(c, http.StatusUnauthorized, "You're not logged in or refresh token missing")
		return
	}

	if err := h.service.Logout(c.Request.Context(), refreshToken); err != nil {
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}

	h.cookies.Clear(c)
	response.Message(c, http.StatusOK, "User logged out successfully")
}

// RefreshToken mints a new access token against the refresh cookie.
// The refresh cookie itself is left untouched.
func (h *Handler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		response.Error(c, http.StatusUnauthorized, "No refresh token found")
		return
	}

	accessToken, err := h.service.RotateAccess(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			response.Error(c, http.StatusUnauthorized, "Invalid refresh Token")
			return
		}
		response.Error(c, http.StatusBadRequest, "Error while refreshing the access token")
		return
	}

	h.cookies.SetAccess(c, accessToken)
	response.Message(c, http.StatusOK, "Access token refreshed")
}

// GetProfile returns the user the auth middleware attached to the
// request context. No additional lookups here.
func (h *Handler) GetProfile(c *gin.Context) {
	userAny, exists := c.Get("user")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, userAny)
}

func summarize(u *domain.User) UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}
