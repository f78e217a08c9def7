package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/gorm"
)

// Videos, playlists and reviews are thin content rows edited from the admin
// panel; the public routes only see published entries.

type VideoInput struct {
	Title     string `json:"title" binding:"required"`
	ReleaseID *uint  `json:"release_id"`
	ArtistID  *uint  `json:"artist_id"`
	URL       string `json:"url" binding:"required,url"`
	Published bool   `json:"published"`
	Position  int    `json:"position"`
}

type PlaylistInput struct {
	Title    string `json:"title" binding:"required"`
	Platform string `json:"platform"`
	URL      string `json:"url" binding:"required,url"`
	Position int    `json:"position"`
}

type ReviewInput struct {
	ReleaseID   uint   `json:"release_id" binding:"required"`
	Publication string `json:"publication" binding:"required"`
	Reviewer    string `json:"reviewer"`
	Quote       string `json:"quote" binding:"required"`
	Rating      int    `json:"rating" binding:"min=0,max=10"`
	URL         string `json:"url"`
	Published   bool   `json:"published"`
}

// GET /api/videos
func GetVideos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var videos []models.Video
		if err := db.Where("published = ?", true).
			Order("position ASC, created_at DESC").
			Find(&videos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
			return
		}
		c.JSON(http.StatusOK, videos)
	}
}

// POST /api/videos (admin)
func CreateVideo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VideoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		video := models.Video{
			Title:     input.Title,
			ReleaseID: input.ReleaseID,
			ArtistID:  input.ArtistID,
			URL:       input.URL,
			Published: input.Published,
			Position:  input.Position,
		}
		if err := db.Create(&video).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
			return
		}
		c.JSON(http.StatusCreated, video)
	}
}

// PUT /api/videos/:id (admin)
func UpdateVideo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var video models.Video
		if err := db.First(&video, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		var input VideoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		video.Title = input.Title
		video.ReleaseID = input.ReleaseID
		video.ArtistID = input.ArtistID
		video.URL = input.URL
		video.Published = input.Published
		video.Position = input.Position
		if err := db.Save(&video).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
			return
		}
		c.JSON(http.StatusOK, video)
	}
}

// DELETE /api/videos/:id (admin)
func DeleteVideo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Video{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
	}
}

// GET /api/playlists
func GetPlaylists(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var playlists []models.Playlist
		if err := db.Order("position ASC, created_at DESC").Find(&playlists).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch playlists"})
			return
		}
		c.JSON(http.StatusOK, playlists)
	}
}

// POST /api/playlists (admin)
func CreatePlaylist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaylistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		playlist := models.Playlist{
			Title:    input.Title,
			Platform: input.Platform,
			URL:      input.URL,
			Position: input.Position,
		}
		if err := db.Create(&playlist).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create playlist"})
			return
		}
		c.JSON(http.StatusCreated, playlist)
	}
}

// DELETE /api/playlists/:id (admin)
func DeletePlaylist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Playlist{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete playlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Playlist not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted"})
	}
}

// GET /api/reviews?release_id=
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("published = ?", true).Order("created_at DESC")
		if releaseID := c.Query("release_id"); releaseID != "" {
			query = query.Where("release_id = ?", releaseID)
		}

		var reviews []models.Review
		if err := query.Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /api/reviews (admin)
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		review := models.Review{
			ReleaseID:   input.ReleaseID,
			Publication: input.Publication,
			Reviewer:    input.Reviewer,
			Quote:       input.Quote,
			Rating:      input.Rating,
			URL:         input.URL,
			Published:   input.Published,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// PUT /api/reviews/:id (admin)
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review models.Review
		if err := db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		review.ReleaseID = input.ReleaseID
		review.Publication = input.Publication
		review.Reviewer = input.Reviewer
		review.Quote = input.Quote
		review.Rating = input.Rating
		review.URL = input.URL
		review.Published = input.Published
		if err := db.Save(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// DELETE /api/reviews/:id (admin)
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Review{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
