package main

import (
	"log"
	"os"

	"github.com/foodexpress/foodexpress-api/internal/config"
	"github.com/foodexpress/foodexpress-api/internal/database"
	"github.com/foodexpress/foodexpress-api/internal/models"
	"github.com/foodexpress/foodexpress-api/internal/utils"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	// Idempotent: keep an existing admin
	var admin models.User
	result := database.DB.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Username)
		log.Println("  Email:", admin.Email)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		ID:           utils.NewID(),
		Email:        adminEmail,
		Username:     adminUsername,
		PasswordHash: passwordHash,
		Roles:        []string{models.RoleUser, models.RoleAdmin},
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created successfully")
	log.Println("  Username:", admin.Username)
	log.Println("  Email:", admin.Email)
}
