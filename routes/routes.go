package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/baqati-oman/storefront-api/cache"
	cartControllers "github.com/baqati-oman/storefront-api/controllers/cart"
)

// SetupRoutes is the single entry-point that wires up the storefront and admin
// route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, countCache cache.CountCache) {
	badge := cartControllers.NewBadge(db, countCache)

	// Public storefront (catalog + session-scoped cart/wishlist)
	SetupStorefrontRoutes(r, db, badge)

	// Admin catalog management (API-key protected)
	SetupAdminRoutes(r, db)
}
