package main

import (
	"log"
	"os"
	"time"

	"docintel-be/internal/model"
	"docintel-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding default admin account...")

	var existing model.User
	if err := db.Where("email = ?", "admin@company.com").First(&existing).Error; err == nil {
		log.Println("Admin account already exists, skipping...")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Error: Failed to hash admin password:", err)
		}
		hashStr := string(hash)

		admin := model.User{
			Username:       "admin",
			Email:          "admin@company.com",
			PasswordHash:   &hashStr,
			Role:           "admin",
			FirstName:      "John",
			LastName:       "Doe",
			StorageUsedMB:  1800,
			StorageLimitMB: 2500,
			IsApproved:     true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatal("Error: Failed to create admin account:", err)
		}
		log.Printf("Created admin account: %s", admin.Email)
	}

	log.Println("Seeding system component status...")

	components := []model.SystemStatus{
		{Component: "llm_engine", Status: "online"},
		{Component: "onedrive_sync", Status: "online"},
		{Component: "document_indexing", Status: "online"},
		{Component: "backup_service", Status: "online"},
	}

	for _, c := range components {
		var found model.SystemStatus
		if err := db.Where("component = ?", c.Component).First(&found).Error; err == nil {
			log.Printf("Component '%s' already seeded, skipping...", c.Component)
			continue
		}
		c.UpdatedAt = time.Now()
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error seeding component '%s': %v", c.Component, err)
		} else {
			log.Printf("Seeded component: %s", c.Component)
		}
	}

	log.Println("Seeding completed!")
}
