package modules

import (
	"github.com/gin-gonic/gin"

	"contacts-api/internal/application"
	"contacts-api/internal/container"
	handlers "contacts-api/internal/interface/http"
	"contacts-api/internal/interface/middleware"
)

type ContactModule struct {
	Handler *handlers.ContactHandler
	Svc     *application.AuthService
}

func NewContactModule(h *handlers.ContactHandler, svc *application.AuthService) *ContactModule {
	return &ContactModule{Handler: h, Svc: svc}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()

	contacts := rg.Group("/contacts")
	contacts.Use(middleware.Auth(m.Svc))
	contacts.Use(middleware.RateLimit(container.GetRedis(), cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByUserAndPath()))
	{
		contacts.GET("", m.Handler.List)
		contacts.GET("/:id", m.Handler.Get)
		contacts.POST("", m.Handler.Create)
		contacts.PUT("/:id", m.Handler.Update)
		contacts.DELETE("/:id", m.Handler.Delete)
	}
}
