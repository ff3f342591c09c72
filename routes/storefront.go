package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/baqati-oman/storefront-api/controllers/cart"
	productControllers "github.com/baqati-oman/storefront-api/controllers/product"
	wishlistControllers "github.com/baqati-oman/storefront-api/controllers/wishlist"
	"github.com/baqati-oman/storefront-api/middleware"
)

// SetupStorefrontRoutes registers the shopper-facing endpoints. Everything
// runs behind the session middleware so cart and wishlist rows are scoped to
// the caller's token.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, badge *cartControllers.Badge) {
	store := r.Group("/")
	store.Use(middleware.ResolveSession)
	{
		// ──────────────── Product Catalog ────────────────
		store.GET("/products", productControllers.GetProducts(db))           // GET /products
		store.GET("/products/categories", productControllers.GetCategories(db)) // GET /products/categories
		store.GET("/products/:id", productControllers.GetProductByID(db))    // GET /products/:id

		// ──────────────── Shopping Cart ────────────────
		cartGroup := store.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))                       // GET /cart
			cartGroup.POST("", cartControllers.AddCartItem(db, badge))           // POST /cart
			cartGroup.PUT("/:id", cartControllers.UpdateCartItem(db, badge))     // PUT /cart/:id
			cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(db, badge))  // DELETE /cart/:id
			cartGroup.DELETE("", cartControllers.ClearCart(db, badge))           // DELETE /cart
			cartGroup.GET("/count", cartControllers.GetCartCount(badge))         // GET /cart/count
			cartGroup.GET("/stream", badge.Stream)                               // GET /cart/stream (websocket)
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := store.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlistControllers.GetWishlist(db))                            // GET /wishlist
			wishlistGroup.POST("", wishlistControllers.AddWishlistItem(db))                       // POST /wishlist
			wishlistGroup.POST("/toggle", wishlistControllers.ToggleWishlistItem(db))             // POST /wishlist/toggle
			wishlistGroup.GET("/contains/:product_id", wishlistControllers.ContainsWishlistItem(db)) // GET /wishlist/contains/:product_id
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveWishlistItem(db))      // DELETE /wishlist/:product_id
		}
	}
}
