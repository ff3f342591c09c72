package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/baqati-oman/storefront-api/controllers/product"
	"github.com/baqati-oman/storefront-api/middleware"
)

// SetupAdminRoutes registers the catalog-management endpoints. The storefront
// itself never writes products; this is the administrative surface, guarded by
// an API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.POST("/products", productControllers.CreateProduct(db))              // POST /admin/products
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))           // PUT /admin/products/:id
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))        // DELETE /admin/products/:id
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db)) // GET /admin/products/export
	}
}
