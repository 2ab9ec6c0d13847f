// Seed creates the initial admin account from environment variables.
// It is meant to run once against a fresh database:
//
//	ADMIN_USERNAME=me ADMIN_EMAIL=me@example.com ADMIN_PASSWORD=secret go run cmd/seed/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/akshayrj/portfolio-backend/config"
	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
	"github.com/akshayrj/portfolio-backend/internal/db"
	"github.com/akshayrj/portfolio-backend/pkg/util"
)

func main() {
	username := os.Getenv("ADMIN_USERNAME")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || email == "" || password == "" {
		log.Fatal("ADMIN_USERNAME, ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if len(password) < 6 {
		log.Fatal("ADMIN_PASSWORD must be at least 6 characters")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := repository.NewUserRepository(db.GetDB())

	count, err := userRepo.Count()
	if err != nil {
		log.Fatal("Failed to count users:", err)
	}
	if count > 0 {
		fmt.Println("An admin account already exists, nothing to do.")
		return
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	fmt.Printf("Admin account created: %s <%s>\n", username, email)
}
