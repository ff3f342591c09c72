package cartControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/baqati-oman/storefront-api/middleware"
	"github.com/baqati-oman/storefront-api/models"
	"github.com/baqati-oman/storefront-api/pricing"
)

type AddCartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	// Pointer so an omitted quantity (defaults to 1) is distinguishable from
	// an explicit, invalid 0.
	Quantity *int `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// POST /cart
func AddCartItem(db *gorm.DB, badge *Badge) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		quantity := 1
		if input.Quantity != nil {
			if *input.Quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
				return
			}
			quantity = *input.Quantity
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			log.Printf("cart: product lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}

		// Atomic upsert against the (session_id, product_id) unique index:
		// concurrent adds for the same product can neither double-insert nor
		// lose an increment.
		item := models.CartItem{
			SessionID: sessionID,
			ProductID: product.ID,
			Quantity:  quantity,
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"updated_at": time.Now(),
			}),
		}).Create(&item).Error
		if err != nil {
			log.Printf("cart: upsert failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}

		badge.CartChanged(c.Request.Context(), sessionID)

		var saved models.CartItem
		if err := db.Preload("Product").
			Where("session_id = ? AND product_id = ?", sessionID, product.ID).
			First(&saved).Error; err != nil {
			log.Printf("cart: reload after upsert failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

// PUT /cart/:id
func UpdateCartItem(db *gorm.DB, badge *Badge) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		itemID := c.Param("id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Quantities below 1 are never stored; the row is removed instead.
		if *input.Quantity < 1 {
			result := db.Where("id = ? AND session_id = ?", itemID, sessionID).
				Delete(&models.CartItem{})
			if result.Error != nil {
				log.Printf("cart: delete on zero quantity failed: %v", result.Error)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
			badge.CartChanged(c.Request.Context(), sessionID)
			c.JSON(http.StatusOK, gin.H{"message": "Removed from cart", "deleted": true})
			return
		}

		result := db.Model(&models.CartItem{}).
			Where("id = ? AND session_id = ?", itemID, sessionID).
			Update("quantity", *input.Quantity)
		if result.Error != nil {
			log.Printf("cart: quantity update failed: %v", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		badge.CartChanged(c.Request.Context(), sessionID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /cart/:id
func DeleteCartItem(db *gorm.DB, badge *Badge) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		itemID := c.Param("id")

		result := db.Where("id = ? AND session_id = ?", itemID, sessionID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			log.Printf("cart: delete failed: %v", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
			return
		}

		badge.CartChanged(c.Request.Context(), sessionID)

		// Deleting an id that no longer exists is not an error; the call
		// succeeded and the row is gone either way.
		c.JSON(http.StatusOK, gin.H{
			"message": "Removed from cart",
			"deleted": result.RowsAffected > 0,
		})
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB, badge *Badge) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		if err := db.Where("session_id = ?", sessionID).
			Delete(&models.CartItem{}).Error; err != nil {
			log.Printf("cart: clear failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		badge.CartChanged(c.Request.Context(), sessionID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		var items []models.CartItem
		if err := db.Preload("Product").
			Where("session_id = ?", sessionID).
			Order("created_at ASC").
			Find(&items).Error; err != nil {
			log.Printf("cart: fetch failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		count := 0
		for _, item := range items {
			count += item.Quantity
		}
		if items == nil {
			items = []models.CartItem{}
		}

		c.JSON(http.StatusOK, gin.H{
			"items":   items,
			"count":   count,
			"summary": pricing.Summarize(items),
		})
	}
}

// GET /cart/count
func GetCartCount(badge *Badge) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		c.JSON(http.StatusOK, gin.H{"count": badge.Count(c.Request.Context(), sessionID)})
	}
}
