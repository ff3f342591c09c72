package productcontroller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/baqati-oman/storefront-api/models"
)

// GetProducts lists the catalog, newest first.
// Query params: category (exact match, "all" disables the filter), search
// (case-insensitive substring against name or description), featured (=true).
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		search := c.Query("search")
		featured := c.Query("featured")

		query := db.Model(&models.Product{})

		if category != "" && category != "all" {
			query = query.Where("category = ?", category)
		}

		if search != "" {
			// LOWER + LIKE rather than ILIKE so the same query runs on
			// postgres and the sqlite test database.
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ?",
				likePattern, likePattern,
			)
		}

		if featured == "true" {
			query = query.Where("featured = ?", true)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			log.Printf("products: list failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}
