package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/gorm"
)

type ArtistInput struct {
	Name       string `json:"name" binding:"required"`
	Slug       string `json:"slug" binding:"required"`
	SortName   string `json:"sort_name"`
	Instrument string `json:"instrument"`
	Bio        string `json:"bio"`
	ImageURL   string `json:"image_url"`
	Featured   bool   `json:"featured"`
}

// GET /api/artists
func GetArtists(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("sort_name ASC, name ASC")
		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}

		var artists []models.Artist
		if err := query.Find(&artists).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artists"})
			return
		}
		c.JSON(http.StatusOK, artists)
	}
}

// GET /api/artists/:id — accepts the slug or the numeric id.
func GetArtistBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("id")
		var artist models.Artist
		if err := db.Preload("Releases").
			Where("slug = ? OR id::text = ?", key, key).
			First(&artist).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artist"})
			}
			return
		}
		c.JSON(http.StatusOK, artist)
	}
}

// POST /api/artists (admin)
func CreateArtist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ArtistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		artist := models.Artist{
			Name:       input.Name,
			Slug:       input.Slug,
			SortName:   input.SortName,
			Instrument: input.Instrument,
			Bio:        input.Bio,
			ImageURL:   input.ImageURL,
			Featured:   input.Featured,
		}
		if err := db.Create(&artist).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist"})
			return
		}
		c.JSON(http.StatusCreated, artist)
	}
}

// PUT /api/artists/:id (admin)
func UpdateArtist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var artist models.Artist
		if err := db.First(&artist, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}

		var input ArtistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		artist.Name = input.Name
		artist.Slug = input.Slug
		artist.SortName = input.SortName
		artist.Instrument = input.Instrument
		artist.Bio = input.Bio
		artist.ImageURL = input.ImageURL
		artist.Featured = input.Featured

		if err := db.Save(&artist).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
			return
		}
		c.JSON(http.StatusOK, artist)
	}
}

// DELETE /api/artists/:id (admin)
func DeleteArtist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Artist{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Artist deleted"})
	}
}
