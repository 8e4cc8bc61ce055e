package models

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int     `gorm:"default:0" json:"stock"`
	// A product may be uncategorized; the category is never owned.
	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ImageURL   string    `json:"image_url"`
	Featured   bool      `gorm:"default:false" json:"featured"`
	// Ordered key/value specification list shown on the product page.
	Specifications []ProductSpec `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"specifications"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type ProductSpec struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	Position  int    `json:"-"` // preserves the order specs were submitted in
	Key       string `json:"key"`
	Value     string `json:"value"`
}
