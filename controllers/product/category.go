package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/baqati-oman/storefront-api/models"
)

// GetCategories returns the distinct category values currently in use,
// alphabetically.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.Product{}).
			Distinct("category").
			Where("category <> ''").
			Order("category ASC").
			Pluck("category", &categories).Error; err != nil {
			log.Printf("products: category listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, categories)
	}
}
