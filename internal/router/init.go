package router

import (
	"contacts-api/internal/application"
	"contacts-api/internal/container"
	pginfra "contacts-api/internal/infrastructure/postgres"
	handlers "contacts-api/internal/interface/http"
	"contacts-api/internal/router/modules"
	"contacts-api/pkg/helpers"
)

// InitModules wires repositories, services and handlers from the
// container singletons and registers every feature module. Called once
// at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	contactRepo := pginfra.NewContactRepository(pool)

	// Keep the publisher interface nil when rabbit is disabled; a typed
	// nil pointer would slip past the service's nil check.
	var pub application.EmailPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	authSvc := application.NewAuthService(
		userRepo,
		container.GetJWT(),
		helpers.NewGravatarClient(),
		pub,
		logger,
		cfg.BaseURL,
	)
	contactSvc := application.NewContactService(contactRepo)

	r.Add(
		modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), authSvc),
		modules.NewUserModule(handlers.NewUserHandler(authSvc, logger), authSvc),
		modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger), authSvc),
		modules.NewHealthModule(handlers.NewHealthHandler(pool, logger)),
	)
}
