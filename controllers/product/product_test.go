package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/baqati-oman/storefront-api/middleware"
	"github.com/baqati-oman/storefront-api/models"
)

const testAPIKey = "test-admin-key"

func setupProductRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("ADMIN_API_KEY", testAPIKey)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/products/categories", GetCategories(db))
	r.GET("/products/:id", GetProductByID(db))

	admin := r.Group("/admin", middleware.ValidateAPIKey)
	admin.POST("/products", CreateProduct(db))
	admin.PUT("/products/:id", UpdateProduct(db))
	admin.DELETE("/products/:id", DeleteProduct(db))
	admin.GET("/products/export", ExportProductsToExcel(db))

	return r, db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	products := []models.Product{
		{Name: "Rose Bouquet", Description: "A dozen red roses", Price: 25.00, Category: "bouquets", Stock: 10, Featured: true, CreatedAt: base},
		{Name: "Tulip Vase", Description: "Fresh tulips in a glass vase", Price: 18.50, Category: "vases", Stock: 4, CreatedAt: base.Add(time.Hour)},
		{Name: "Orchid Pot", Description: "Potted white orchid", Price: 30.00, Category: "plants", Stock: 7, Featured: true, CreatedAt: base.Add(2 * time.Hour)},
		{Name: "Daisy Bunch", Description: "Cheerful daisies", Price: 9.00, Category: "bouquets", Stock: 15, CreatedAt: base.Add(3 * time.Hour)},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminJSON(r *gin.Engine, method, path, apiKey string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-KEY", apiKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) []models.Product {
	t.Helper()
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func TestGetProductsNewestFirst(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	w := get(r, "/products")
	require.Equal(t, http.StatusOK, w.Code)

	products := decodeProducts(t, w)
	require.Len(t, products, 4)
	assert.Equal(t, "Daisy Bunch", products[0].Name)
	assert.Equal(t, "Rose Bouquet", products[3].Name)
}

func TestGetProductsCategoryFilter(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	w := get(r, "/products?category=bouquets")
	products := decodeProducts(t, w)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "bouquets", p.Category)
	}

	// "all" disables the filter
	w = get(r, "/products?category=all")
	assert.Len(t, decodeProducts(t, w), 4)
}

func TestGetProductsSearchIsCaseInsensitive(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	// Matches name
	w := get(r, "/products?search=ROSE")
	products := decodeProducts(t, w)
	require.Len(t, products, 1)
	assert.Equal(t, "Rose Bouquet", products[0].Name)

	// Matches description only
	w = get(r, "/products?search=glass")
	products = decodeProducts(t, w)
	require.Len(t, products, 1)
	assert.Equal(t, "Tulip Vase", products[0].Name)
}

func TestGetProductsFeaturedFilter(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	w := get(r, "/products?featured=true")
	products := decodeProducts(t, w)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.True(t, p.Featured)
	}
}

func TestGetProductByID(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	var p models.Product
	require.NoError(t, db.First(&p, "name = ?", "Orchid Pot").Error)

	w := get(r, fmt.Sprintf("/products/%d", p.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, 30.00, got.Price)

	assert.Equal(t, http.StatusNotFound, get(r, "/products/9999").Code)
}

func TestGetCategoriesDistinctAndSorted(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	w := get(r, "/products/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Equal(t, []string{"bouquets", "plants", "vases"}, categories)
}

func TestAdminRoutesRequireAPIKey(t *testing.T) {
	r, _ := setupProductRouter(t)

	w := adminJSON(r, http.MethodPost, "/admin/products", "", gin.H{"name": "x", "price": 1.0})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = adminJSON(r, http.MethodPost, "/admin/products", "wrong-key", gin.H{"name": "x", "price": 1.0})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProduct(t *testing.T) {
	r, db := setupProductRouter(t)

	w := adminJSON(r, http.MethodPost, "/admin/products", testAPIKey, gin.H{
		"name":     "Lily Basket",
		"price":    22.5,
		"category": "baskets",
		"stock":    3,
		"featured": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var p models.Product
	require.NoError(t, db.First(&p, "name = ?", "Lily Basket").Error)
	assert.Equal(t, 22.5, p.Price)
	assert.True(t, p.Featured)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	r, _ := setupProductRouter(t)

	w := adminJSON(r, http.MethodPost, "/admin/products", testAPIKey, gin.H{
		"name":  "Bad Product",
		"price": -1.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductPartial(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	var p models.Product
	require.NoError(t, db.First(&p, "name = ?", "Daisy Bunch").Error)

	w := adminJSON(r, http.MethodPut, fmt.Sprintf("/admin/products/%d", p.ID), testAPIKey, gin.H{
		"price": 11.0,
		"stock": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&p, p.ID).Error)
	assert.Equal(t, 11.0, p.Price)
	assert.Equal(t, 2, p.Stock)
	assert.Equal(t, "Daisy Bunch", p.Name, "untouched fields keep their values")
}

func TestDeleteProduct(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	var p models.Product
	require.NoError(t, db.First(&p, "name = ?", "Tulip Vase").Error)

	w := adminJSON(r, http.MethodDelete, fmt.Sprintf("/admin/products/%d", p.ID), testAPIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)

	err := db.First(&p, p.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	w = adminJSON(r, http.MethodDelete, fmt.Sprintf("/admin/products/%d", p.ID), testAPIKey, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportProductsToExcel(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	w := adminJSON(r, http.MethodGet, "/admin/products/export", testAPIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products.xlsx")
	assert.NotZero(t, w.Body.Len())
}
