package modules

import (
	"github.com/gin-gonic/gin"

	"contacts-api/internal/application"
	"contacts-api/internal/container"
	handlers "contacts-api/internal/interface/http"
	"contacts-api/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Svc     *application.AuthService
}

func NewAuthModule(h *handlers.AuthHandler, svc *application.AuthService) *AuthModule {
	return &AuthModule{Handler: h, Svc: svc}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	rl := middleware.RateLimit(container.GetRedis(), cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIPAndPath())

	rg.POST("/auth/signup", rl, m.Handler.Signup)
	rg.POST("/auth/login", rl, m.Handler.Login)
	rg.GET("/auth/refresh_token", rl, m.Handler.Refresh)
	rg.GET("/auth/confirmed_email/:token", rl, m.Handler.ConfirmEmail)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Svc))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
	}
}
