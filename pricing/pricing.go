// Package pricing computes the order summary for a cart. It is pure: the same
// cart items always produce the same summary, and nothing here touches the
// database or the request.
package pricing

import (
	"fmt"

	"github.com/baqati-oman/storefront-api/models"
)

const (
	// FreeShippingOver is the subtotal above which shipping is free.
	FreeShippingOver = 50.0

	// FlatShippingFee applies to every order at or under the threshold.
	FlatShippingFee = 5.0

	// TaxRate is a flat 5%, no category-dependent rates.
	TaxRate = 0.05

	Currency = "OMR"
)

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Summarize derives the order summary from the cart rows and their product
// snapshots. Values stay unrounded; rounding happens only at display time via
// FormatPrice.
func Summarize(items []models.CartItem) Summary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	shipping := FlatShippingFee
	if subtotal > FreeShippingOver {
		shipping = 0
	}
	tax := subtotal * TaxRate

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// FormatPrice renders a price for display, rounded to two decimals.
func FormatPrice(v float64) string {
	return fmt.Sprintf("%.2f %s", v, Currency)
}
