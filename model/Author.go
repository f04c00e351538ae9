package model

import (
	"time"
)

type Author struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Firstname string    `gorm:"size:50;not null"`
	Lastname  string    `gorm:"size:50;not null"`
	Bio       string    `gorm:"size:500"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Books []Book `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}
