package dto

import "bookstore-api/model"

type BookDTO struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	AuthorID uint    `json:"author_id"`
	ISBN     string  `json:"isbn"`
	Year     int     `json:"year"`
	Summary  string  `json:"summary"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
}

type BookCreateDTO struct {
	Title    string  `json:"title" validate:"required,max=100"`
	AuthorID uint    `json:"author_id" validate:"required,min=1"`
	ISBN     string  `json:"isbn" validate:"required,max=20"`
	Year     int     `json:"year" validate:"omitempty,min=0"`
	Summary  string  `json:"summary" validate:"max=500"`
	Image    string  `json:"image" validate:"omitempty,max=255"`
	Price    float64 `json:"price" validate:"omitempty,min=0"`
}

type BookUpdateDTO struct {
	ID       uint    `json:"id" validate:"required,min=1"`
	Title    string  `json:"title" validate:"required,max=100"`
	AuthorID uint    `json:"author_id" validate:"required,min=1"`
	ISBN     string  `json:"isbn" validate:"required,max=20"`
	Year     int     `json:"year" validate:"omitempty,min=0"`
	Summary  string  `json:"summary" validate:"max=500"`
	Image    string  `json:"image" validate:"omitempty,max=255"`
	Price    float64 `json:"price" validate:"omitempty,min=0"`
}

func BookToDTO(b *model.Book) BookDTO {
	return BookDTO{
		ID:       b.ID,
		Title:    b.Title,
		AuthorID: b.AuthorID,
		ISBN:     b.ISBN,
		Year:     b.Year,
		Summary:  b.Summary,
		Image:    b.Image,
		Price:    b.Price,
	}
}

func BooksToDTO(books []model.Book) []BookDTO {
	out := make([]BookDTO, 0, len(books))
	for i := range books {
		out = append(out, BookToDTO(&books[i]))
	}
	return out
}

func (d *BookCreateDTO) ToModel() *model.Book {
	return &model.Book{
		Title:    d.Title,
		AuthorID: d.AuthorID,
		ISBN:     d.ISBN,
		Year:     d.Year,
		Summary:  d.Summary,
		Image:    d.Image,
		Price:    d.Price,
	}
}

func (d *BookUpdateDTO) ToModel() *model.Book {
	return &model.Book{
		ID:       d.ID,
		Title:    d.Title,
		AuthorID: d.AuthorID,
		ISBN:     d.ISBN,
		Year:     d.Year,
		Summary:  d.Summary,
		Image:    d.Image,
		Price:    d.Price,
	}
}
