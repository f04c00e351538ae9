package repository

import (
	"bookstore-api/model"

	"gorm.io/gorm"
)

// AuthorRepository defines DB operations for Authors.
type AuthorRepository interface {
	FindAll() ([]model.Author, error)
	FindByID(id uint) (*model.Author, error)
	Create(author *model.Author) error
	Update(author *model.Author) error
	Delete(author *model.Author) error
	IsExists(id uint) (bool, error)
}

type pgAuthorRepo struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &pgAuthorRepo{db: db}
}

func (r *pgAuthorRepo) FindAll() ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.Order("id").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *pgAuthorRepo) FindByID(id uint) (*model.Author, error) {
	var a model.Author
	// Books are loaded so a detail view is complete
	if err := r.db.Preload("Books").First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *pgAuthorRepo) Create(author *model.Author) error {
	return r.db.Create(author).Error
}

func (r *pgAuthorRepo) Update(author *model.Author) error {
	return r.db.Save(author).Error
}

func (r *pgAuthorRepo) Delete(author *model.Author) error {
	return r.db.Delete(author).Error
}

func (r *pgAuthorRepo) IsExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Author{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
