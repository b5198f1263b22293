package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `gorm:"not null;index" json:"name"`
	Description string `json:"description"`
	Category    string `gorm:"index" json:"category"`
	Price       int64  `gorm:"not null" json:"price"`
	Stock       int    `gorm:"not null;default:0" json:"stock"`
	Image       string `json:"image"`

	SellerID uint `gorm:"not null;index" json:"sellerId"`
	Seller   User `gorm:"foreignKey:SellerID" json:"-"`

	Reviews []Review `json:"-"`
}
