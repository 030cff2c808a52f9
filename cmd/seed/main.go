package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"contacts-api/config"
	"contacts-api/internal/domain/entity"
	pginfra "contacts-api/internal/infrastructure/postgres"
	"contacts-api/pkg/helpers"
)

// Seeds a confirmed demo account with a handful of contacts, including
// one whose birthday falls inside the upcoming-birthday window.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	contacts := pginfra.NewContactRepository(pool)

	const email = "demo@example.com"
	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("lookup demo user: %v", err)
	}
	if u == nil {
		hash, err := helpers.HashPassword("demo-password")
		if err != nil {
			log.Fatalf("hash: %v", err)
		}
		u = &entity.User{Username: "demo", Email: email, Password: hash}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create demo user: %v", err)
		}
		if err := users.ConfirmEmail(ctx, email); err != nil {
			log.Fatalf("confirm demo user: %v", err)
		}
		log.Printf("created demo user id=%d", u.ID)
	}

	now := time.Now()
	seedContacts := []*entity.Contact{
		{Name: "Ada", LastName: "Lovelace", Email: "ada@example.com", PhoneNumber: "+10000000001", BirthDate: time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)},
		{Name: "Alan", LastName: "Turing", Email: "alan@example.com", PhoneNumber: "+10000000002", BirthDate: time.Date(1985, 6, 23, 0, 0, 0, 0, time.UTC), Notes: "chess"},
		{Name: "Grace", LastName: "Hopper", Email: "grace@example.com", PhoneNumber: "+10000000003", BirthDate: now.AddDate(-30, 0, 3)},
	}
	for _, c := range seedContacts {
		c.UserID = u.ID
		if err := contacts.Create(ctx, c); err != nil {
			log.Fatalf("create contact %s: %v", c.Email, err)
		}
	}
	log.Printf("seeded %d contacts for user id=%d", len(seedContacts), u.ID)
}
