package seeder

import (
	"log"

	"bookstore-api/model"
	"bookstore-api/util"

	"gorm.io/gorm"
)

// SeedAdminUser creates the initial Administrator account from
// ADMIN_USERNAME / ADMIN_PASSWORD / ADMIN_EMAIL when set. Idempotent:
// an existing account is left untouched.
func SeedAdminUser(db *gorm.DB) {
	username := util.GetEnv("ADMIN_USERNAME", "")
	password := util.GetEnv("ADMIN_PASSWORD", "")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seeding")
		return
	}
	email := util.GetEnv("ADMIN_EMAIL", username+"@bookstore.local")

	var existing model.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return
	}

	var adminRole model.Role
	if err := db.Where("name = ?", "Administrator").First(&adminRole).Error; err != nil {
		log.Printf("Error seeding admin user: Administrator role missing: %v", err)
		return
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}

	admin := model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Roles:        []model.Role{adminRole},
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}

	log.Printf("Seeded admin user %s", username)
}
