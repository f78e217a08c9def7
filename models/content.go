package models

import "time"

// Video is an embedded performance or trailer, optionally tied to a release.
type Video struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	ReleaseID *uint     `gorm:"index" json:"release_id"`
	ArtistID  *uint     `gorm:"index" json:"artist_id"`
	URL       string    `gorm:"not null" json:"url"`
	Published bool      `gorm:"default:false" json:"published"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Playlist links out to a curated playlist on a streaming platform.
type Playlist struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Platform  string    `json:"platform"` // e.g. "spotify", "apple_music"
	URL       string    `gorm:"not null" json:"url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Review is a press quote attached to a release.
type Review struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReleaseID   uint      `gorm:"index;not null" json:"release_id"`
	Publication string    `gorm:"not null" json:"publication"`
	Reviewer    string    `json:"reviewer"`
	Quote       string    `gorm:"type:TEXT;not null" json:"quote"`
	Rating      int       `json:"rating"` // 0 when the publication gives no score
	URL         string    `json:"url"`
	Published   bool      `gorm:"default:false" json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
