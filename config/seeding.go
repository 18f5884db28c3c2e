package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"deallane.io/onboarding/models"
)

// SeedAdminUser creates the triage admin account from env on first boot.
// Skips silently when the account already exists or env is unset.
func SeedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("Admin seeding skipped: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("Admin seeding failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Admin seeding failed: %v", err)
		return
	}

	admin := models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Admin seeding failed: %v", err)
		return
	}
	log.Println("Seeded admin user", email)
}
