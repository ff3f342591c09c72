package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistItem marks a product as saved-for-later by a session. Presence only,
// no quantity.
type WishlistItem struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	SessionID string    `gorm:"size:64;not null;uniqueIndex:idx_wishlist_session_product" json:"session_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_wishlist_session_product" json:"product_id"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"created_at"`
}

func (wi *WishlistItem) BeforeCreate(tx *gorm.DB) (err error) {
	if wi.ID == "" {
		wi.ID = uuid.New().String()
	}
	return
}
