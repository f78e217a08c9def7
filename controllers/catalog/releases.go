package catalogControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/gorm"
)

type ReleaseInput struct {
	Title         string     `json:"title" binding:"required"`
	Slug          string     `json:"slug" binding:"required"`
	CatalogNumber string     `json:"catalog_number"`
	Description   string     `json:"description"`
	Tracklist     string     `json:"tracklist"`
	CoverURL      string     `json:"cover_url"`
	ReleaseDate   *time.Time `json:"release_date"`
	Featured      bool       `json:"featured"`
	ArtistIDs     []uint     `json:"artist_ids"`
}

// GET /api/releases
func GetReleases(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Artists").Order("release_date DESC NULLS LAST, created_at DESC")
		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}
		if search := c.Query("search"); search != "" {
			query = query.Where("title ILIKE ?", "%"+search+"%")
		}

		var releases []models.Release
		if err := query.Find(&releases).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch releases"})
			return
		}
		c.JSON(http.StatusOK, releases)
	}
}

// GET /api/releases/:id — the full release page payload; accepts the slug
// or the numeric id.
func GetReleaseBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("id")
		var release models.Release
		if err := db.
			Preload("Artists").
			Preload("Products.Prices").
			Preload("Reviews", "published = ?", true).
			Preload("Videos", "published = ?", true).
			Where("slug = ? OR id::text = ?", key, key).
			First(&release).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Release not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch release"})
			}
			return
		}
		c.JSON(http.StatusOK, release)
	}
}

// POST /api/releases (admin)
func CreateRelease(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReleaseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var artists []models.Artist
		if len(input.ArtistIDs) > 0 {
			if err := db.Where("id IN ?", input.ArtistIDs).Find(&artists).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artists"})
				return
			}
		}

		release := models.Release{
			Title:         input.Title,
			Slug:          input.Slug,
			CatalogNumber: input.CatalogNumber,
			Description:   input.Description,
			Tracklist:     input.Tracklist,
			CoverURL:      input.CoverURL,
			ReleaseDate:   input.ReleaseDate,
			Featured:      input.Featured,
			Artists:       artists,
		}
		if err := db.Create(&release).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create release"})
			return
		}
		c.JSON(http.StatusCreated, release)
	}
}

// PUT /api/releases/:id (admin)
func UpdateRelease(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var release models.Release
		if err := db.First(&release, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Release not found"})
			return
		}

		var input ReleaseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		release.Title = input.Title
		release.Slug = input.Slug
		release.CatalogNumber = input.CatalogNumber
		release.Description = input.Description
		release.Tracklist = input.Tracklist
		release.CoverURL = input.CoverURL
		release.ReleaseDate = input.ReleaseDate
		release.Featured = input.Featured

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.ArtistIDs != nil {
				var artists []models.Artist
				if err := tx.Where("id IN ?", input.ArtistIDs).Find(&artists).Error; err != nil {
					return err
				}
				if err := tx.Model(&release).Association("Artists").Replace(artists); err != nil {
					return err
				}
			}
			return tx.Save(&release).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update release"})
			return
		}
		c.JSON(http.StatusOK, release)
	}
}

// DELETE /api/releases/:id (admin)
func DeleteRelease(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var release models.Release
		if err := db.First(&release, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Release not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&release).Association("Artists").Clear(); err != nil {
				return err
			}
			return tx.Delete(&release).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete release"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Release deleted"})
	}
}
