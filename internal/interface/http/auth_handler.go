package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"contacts-api/internal/application"
	"contacts-api/internal/interface/middleware"
	"contacts-api/pkg/helpers"
	"contacts-api/pkg/response"
	"contacts-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "Account already exists", nil)
			return
		}
		h.Logger.WithError(err).WithField("email", req.Email).Error("signup failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, NewUserResponse(u))
}

// Login POST /api/auth/login
// The three distinct 401 messages below are deliberate contract; see the
// enumeration-surface note in DESIGN.md.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payload", validation.ToDetails(err))
		return
	}

	pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidEmail):
			response.Error(c, http.StatusUnauthorized, "Invalid email", nil)
		case errors.Is(err, application.ErrEmailNotConfirmed):
			response.Error(c, http.StatusUnauthorized, "Email not confirmed", nil)
		case errors.Is(err, application.ErrInvalidPassword):
			response.Error(c, http.StatusUnauthorized, "Invalid password", nil)
		default:
			h.Logger.WithError(err).WithField("email", req.Email).Error("login failed")
			response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	})
}

// Refresh GET /api/auth/refresh_token (bearer refresh token)
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	pair, err := h.Svc.Refresh(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, helpers.ErrInvalidTokenScope):
			response.Error(c, http.StatusUnauthorized, "Invalid scope for token", nil)
		case errors.Is(err, helpers.ErrInvalidToken):
			response.Error(c, http.StatusUnauthorized, "Could not validate credentials", nil)
		case errors.Is(err, application.ErrInvalidRefreshToken):
			response.Error(c, http.StatusUnauthorized, "Invalid refresh token", nil)
		default:
			h.Logger.WithError(err).Error("token refresh failed")
			response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	})
}

// ConfirmEmail GET /api/auth/confirmed_email/:token
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	msg, err := h.Svc.ConfirmEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidEmailToken):
			response.Error(c, http.StatusUnprocessableEntity, "Invalid token for email verification", nil)
		case errors.Is(err, application.ErrVerificationFailed):
			response.Error(c, http.StatusBadRequest, "Verification error", nil)
		default:
			h.Logger.WithError(err).Error("email confirmation failed")
			response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		}
		return
	}
	response.Message(c, http.StatusOK, msg)
}

// Logout POST /api/auth/logout (auth required)
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context(), middleware.UserID(c)); err != nil {
		h.Logger.WithError(err).Error("logout failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
