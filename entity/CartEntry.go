package entity

import (
	"gorm.io/gorm"
)

// CartEntry is one product line in a customer's cart.
type CartEntry struct {
	gorm.Model
	UserID    uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	User      User    `json:"-"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Product   Product `json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
}
