package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baqati-oman/storefront-api/models"
)

func cart(rows ...models.CartItem) []models.CartItem { return rows }

func row(price float64, qty int) models.CartItem {
	return models.CartItem{Quantity: qty, Product: models.Product{Price: price}}
}

func TestSummarizeBelowFreeShippingThreshold(t *testing.T) {
	s := Summarize(cart(row(10.00, 2), row(15.50, 1)))

	assert.InDelta(t, 35.50, s.Subtotal, 1e-9)
	assert.Equal(t, 5.0, s.Shipping)
	assert.InDelta(t, 1.775, s.Tax, 1e-9)
	assert.InDelta(t, 42.275, s.Total, 1e-9)
}

func TestSummarizeAboveFreeShippingThreshold(t *testing.T) {
	s := Summarize(cart(row(30.00, 2)))

	assert.InDelta(t, 60.00, s.Subtotal, 1e-9)
	assert.Equal(t, 0.0, s.Shipping)
	assert.InDelta(t, 3.00, s.Tax, 1e-9)
	assert.InDelta(t, 63.00, s.Total, 1e-9)
}

func TestSummarizeThresholdIsExclusive(t *testing.T) {
	// Exactly 50 still pays shipping; free shipping starts strictly above.
	s := Summarize(cart(row(25.00, 2)))
	assert.Equal(t, 5.0, s.Shipping)

	s = Summarize(cart(row(25.005, 2)))
	assert.Equal(t, 0.0, s.Shipping)
}

func TestSummarizeEmptyCart(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0.0, s.Subtotal)
	assert.Equal(t, 5.0, s.Shipping)
	assert.Equal(t, 0.0, s.Tax)
	assert.Equal(t, 5.0, s.Total)
}

func TestSummarizeIsDeterministic(t *testing.T) {
	items := cart(row(12.75, 3), row(8.00, 1), row(0.50, 10))

	first := Summarize(items)
	second := Summarize(items)

	assert.Equal(t, first, second)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0.00 OMR", FormatPrice(0))
	assert.Equal(t, "5.00 OMR", FormatPrice(5))
	assert.Equal(t, "15.50 OMR", FormatPrice(15.5))
	assert.Equal(t, "7.12 OMR", FormatPrice(7.123))
}
