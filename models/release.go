package models

import "time"

type Release struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Slug          string    `gorm:"uniqueIndex;not null" json:"slug"`
	CatalogNumber string    `gorm:"uniqueIndex" json:"catalog_number"` // e.g. "AVA 10123"
	Description   string    `gorm:"type:TEXT" json:"description"`
	Tracklist     string    `gorm:"type:TEXT" json:"tracklist"`
	CoverURL      string    `json:"cover_url"`
	ReleaseDate   *time.Time `json:"release_date"`
	Featured      bool      `json:"featured"`
	Artists       []Artist  `gorm:"many2many:release_artists" json:"artists,omitempty"`
	Products      []Product `gorm:"foreignKey:ReleaseID" json:"products,omitempty"`
	Reviews       []Review  `gorm:"foreignKey:ReleaseID" json:"reviews,omitempty"`
	Videos        []Video   `gorm:"foreignKey:ReleaseID" json:"videos,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
