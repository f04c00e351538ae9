package repository

import (
	"bookstore-api/model"

	"gorm.io/gorm"
)

// RoleRepository defines DB operations for Roles.
type RoleRepository interface {
	GetByName(name string) (*model.Role, error)
}

type pgRoleRepo struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &pgRoleRepo{db: db}
}

func (r *pgRoleRepo) GetByName(name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, translate(err)
	}
	return &role, nil
}
