package repository

import (
	"bookstore-api/model"

	"gorm.io/gorm"
)

// BookRepository defines DB operations for Books.
type BookRepository interface {
	FindAll() ([]model.Book, error)
	FindByID(id uint) (*model.Book, error)
	Create(book *model.Book) error
	Update(book *model.Book) error
	Delete(book *model.Book) error
	IsExists(id uint) (bool, error)
}

type pgBookRepo struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &pgBookRepo{db: db}
}

func (r *pgBookRepo) FindAll() ([]model.Book, error) {
	var books []model.Book
	if err := r.db.Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *pgBookRepo) FindByID(id uint) (*model.Book, error) {
	var b model.Book
	if err := r.db.Preload("Author").First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *pgBookRepo) Create(book *model.Book) error {
	return r.db.Create(book).Error
}

func (r *pgBookRepo) Update(book *model.Book) error {
	return r.db.Save(book).Error
}

func (r *pgBookRepo) Delete(book *model.Book) error {
	return r.db.Delete(book).Error
}

func (r *pgBookRepo) IsExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Book{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
