package modules

import (
	"github.com/gin-gonic/gin"

	"contacts-api/internal/application"
	"contacts-api/internal/container"
	handlers "contacts-api/internal/interface/http"
	"contacts-api/internal/interface/middleware"
)

type UserModule struct {
	Handler *handlers.UserHandler
	Svc     *application.AuthService
}

func NewUserModule(h *handlers.UserHandler, svc *application.AuthService) *UserModule {
	return &UserModule{Handler: h, Svc: svc}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()

	users := rg.Group("/users")
	users.Use(middleware.Auth(m.Svc))
	users.Use(middleware.RateLimit(container.GetRedis(), cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByUserAndPath()))
	{
		users.GET("/me", m.Handler.Me)
		users.PATCH("/avatar", m.Handler.UpdateAvatar)
	}
}
