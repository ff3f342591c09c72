package wishlistControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/baqati-oman/storefront-api/middleware"
	"github.com/baqati-oman/storefront-api/models"
)

type WishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// POST /wishlist
func AddWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			log.Printf("wishlist: product lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}

		present, err := exists(db, sessionID, product.ID)
		if err != nil {
			log.Printf("wishlist: existence check failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}
		if present {
			c.JSON(http.StatusOK, gin.H{
				"message":             "Already in wishlist",
				"already_in_wishlist": true,
			})
			return
		}

		item := models.WishlistItem{SessionID: sessionID, ProductID: product.ID}
		if err := db.Create(&item).Error; err != nil {
			// The unique index catches a concurrent add that slipped past the
			// existence check; treat it as already present, not a failure.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusOK, gin.H{
					"message":             "Already in wishlist",
					"already_in_wishlist": true,
				})
				return
			}
			log.Printf("wishlist: insert failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":             "Added to wishlist",
			"already_in_wishlist": false,
		})
	}
}

// DELETE /wishlist/:product_id
func RemoveWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		result := db.Where("session_id = ? AND product_id = ?", sessionID, productID).
			Delete(&models.WishlistItem{})
		if result.Error != nil {
			log.Printf("wishlist: delete failed: %v", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Removed from wishlist",
			"deleted": result.RowsAffected > 0,
		})
	}
}

// GET /wishlist/contains/:product_id
func ContainsWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		present, err := exists(db, sessionID, productID)
		if err != nil {
			log.Printf("wishlist: existence check failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"in_wishlist": present})
	}
}

// POST /wishlist/toggle
func ToggleWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		present, err := exists(db, sessionID, input.ProductID)
		if err != nil {
			log.Printf("wishlist: existence check failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		if present {
			if err := db.Where("session_id = ? AND product_id = ?", sessionID, input.ProductID).
				Delete(&models.WishlistItem{}).Error; err != nil {
				log.Printf("wishlist: toggle delete failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"in_wishlist": false})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			log.Printf("wishlist: product lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		item := models.WishlistItem{SessionID: sessionID, ProductID: input.ProductID}
		if err := db.Create(&item).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("wishlist: toggle insert failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"in_wishlist": true})
	}
}

// GET /wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		var items []models.WishlistItem
		if err := db.Preload("Product").
			Where("session_id = ?", sessionID).
			Order("created_at DESC").
			Find(&items).Error; err != nil {
			log.Printf("wishlist: fetch failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		if items == nil {
			items = []models.WishlistItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

func exists(db *gorm.DB, sessionID string, productID uint) (bool, error) {
	var n int64
	err := db.Model(&models.WishlistItem{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Count(&n).Error
	return n > 0, err
}

func parseProductID(c *gin.Context) (uint, error) {
	id64, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	return uint(id64), err
}
