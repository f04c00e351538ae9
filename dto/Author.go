package dto

import "bookstore-api/model"

type AuthorDTO struct {
	ID        uint   `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Bio       string `json:"bio"`
}

type AuthorCreateDTO struct {
	Firstname string `json:"firstname" validate:"required,max=50"`
	Lastname  string `json:"lastname" validate:"required,max=50"`
	Bio       string `json:"bio" validate:"max=500"`
}

type AuthorUpdateDTO struct {
	ID        uint   `json:"id" validate:"required,min=1"`
	Firstname string `json:"firstname" validate:"required,max=50"`
	Lastname  string `json:"lastname" validate:"required,max=50"`
	Bio       string `json:"bio" validate:"max=500"`
}

func AuthorToDTO(a *model.Author) AuthorDTO {
	return AuthorDTO{
		ID:        a.ID,
		Firstname: a.Firstname,
		Lastname:  a.Lastname,
		Bio:       a.Bio,
	}
}

func AuthorsToDTO(authors []model.Author) []AuthorDTO {
	out := make([]AuthorDTO, 0, len(authors))
	for i := range authors {
		out = append(out, AuthorToDTO(&authors[i]))
	}
	return out
}

func (d *AuthorCreateDTO) ToModel() *model.Author {
	return &model.Author{
		Firstname: d.Firstname,
		Lastname:  d.Lastname,
		Bio:       d.Bio,
	}
}

func (d *AuthorUpdateDTO) ToModel() *model.Author {
	return &model.Author{
		ID:        d.ID,
		Firstname: d.Firstname,
		Lastname:  d.Lastname,
		Bio:       d.Bio,
	}
}
