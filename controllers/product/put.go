package productcontroller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/baqati-oman/storefront-api/models"
)

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
	Featured    *bool    `json:"featured"`
}

// UpdateProduct partially updates a product by ID. Admin only; absent fields
// are left untouched.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				log.Printf("products: lookup failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
				return
			}
			product.Price = *input.Price
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must not be negative"})
				return
			}
			product.Stock = *input.Stock
		}
		if input.Featured != nil {
			product.Featured = *input.Featured
		}

		if err := db.Save(&product).Error; err != nil {
			log.Printf("products: update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
