package models

import (
	"time"
)

// CartLine holds a quantity of one item for one anonymous shopper
// session. The composite unique index backs the atomic add/increment
// upsert, so at most one line exists per (session, item) pair.
type CartLine struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"not null;uniqueIndex:idx_cart_session_item" json:"session_id"`
	ItemID    uint      `gorm:"not null;uniqueIndex:idx_cart_session_item" json:"item_id"`
	Item      Item      `gorm:"foreignKey:ItemID" json:"item"`
	Quantity  int       `gorm:"default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtotal is the display subtotal for the line. Cart math uses the
// baseline price, not the selling price.
func (l CartLine) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}
