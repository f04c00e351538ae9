package seeder

import (
	"log"

	"bookstore-api/model"

	"gorm.io/gorm"
)

func SeedRoles(db *gorm.DB) {
	roles := []model.Role{
		{
			Name:        "Administrator",
			Description: "Can manage the catalog",
			IsSystem:    true,
		},
		{
			Name:        "Customer",
			Description: "Standard registered user",
			IsSystem:    true,
		},
	}

	log.Println("Seeding roles...")

	for _, role := range roles {
		// Name is the unique identifier used for the existence check
		if err := db.Where(model.Role{Name: role.Name}).FirstOrCreate(&role).Error; err != nil {
			log.Printf("Error seeding role %s: %v", role.Name, err)
		}
	}

	log.Println("Role seeding completed.")
}
