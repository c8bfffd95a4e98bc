package models

import (
	"time"
)

// Item is one catalog entry of vintage inventory. SellingPrice defaults
// to Price when not supplied at creation; Status doubles as the
// sold/unavailable marker.
type Item struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `gorm:"not null;index" json:"category"`
	Price        float64   `gorm:"not null" json:"price"`
	SellingPrice float64   `json:"selling_price"`
	Description  string    `json:"description"`
	Condition    string    `gorm:"default:Good" json:"condition"`
	Status       string    `gorm:"default:Available;index" json:"status"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
