package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/baqati-oman/storefront-api/models"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
}

// CreateProduct adds a product to the catalog. Admin only.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}
		if input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must not be negative"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       *input.Price,
			ImageURL:    input.ImageURL,
			Category:    input.Category,
			Stock:       input.Stock,
			Featured:    input.Featured,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Printf("products: create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
