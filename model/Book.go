package model

import (
	"time"
)

type Book struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"size:100;not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	ISBN      string `gorm:"size:20;uniqueIndex"`
	Year      int
	Summary   string  `gorm:"size:500"`
	Image     string  `gorm:"size:255"`
	Price     float64
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Author Author `gorm:"foreignKey:AuthorID"`
}
