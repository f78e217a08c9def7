package models

import "time"

type Artist struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Slug       string    `gorm:"uniqueIndex;not null" json:"slug"`
	SortName   string    `json:"sort_name"` // e.g. "Kniazev, Alexander"
	Instrument string    `json:"instrument"`
	Bio        string    `gorm:"type:TEXT" json:"bio"`
	ImageURL   string    `json:"image_url"`
	Featured   bool      `json:"featured"`
	Releases   []Release `gorm:"many2many:release_artists" json:"releases,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
