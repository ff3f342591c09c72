package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one product selection belonging to an anonymous session.
// The composite unique index keeps at most one row per (session, product);
// the add-to-cart upsert increments against it.
type CartItem struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	SessionID string    `gorm:"size:64;not null;uniqueIndex:idx_cart_session_product" json:"session_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
