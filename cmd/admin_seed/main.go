// Command admin_seed creates the initial admin account from
// ADMIN_EMAIL, ADMIN_PASSWORD, ADMIN_USERNAME and ADMIN_PHONE.
package main

import (
	"errors"
	"log"
	"os"

	"minimart/internal/config"
	"minimart/internal/models"
	"minimart/internal/repositories"
	"minimart/internal/services/auth"

	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPhone := os.Getenv("ADMIN_PHONE")
	if adminEmail == "" || adminPassword == "" || adminUsername == "" || adminPhone == "" {
		log.Fatal("ADMIN_EMAIL, ADMIN_PASSWORD, ADMIN_USERNAME and ADMIN_PHONE must be set in environment")
	}

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("failed to get database instance: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("failed to close database connection: %v", err)
		}
	}()

	var existing models.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Println("admin user already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to check for existing admin: %v", err)
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.User{
		Email:       adminEmail,
		Password:    hashed,
		Username:    adminUsername,
		PhoneNumber: adminPhone,
		Role:        models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	log.Println("admin account created")
}
