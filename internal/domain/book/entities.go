package book

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("book not found")
	ErrUnavailable = errors.New("book unavailable")
)

// Book rows are seeded out of band (cmd/seed); the lending flow only ever
// flips Available. Available must be false exactly while one open order
// references the book.
type Book struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Author    string    `gorm:"column:author;size:255;not null" json:"author"`
	Available bool      `gorm:"column:available;not null;default:true" json:"available"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Book) TableName() string { return "books" }
