package entity

import (
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	gorm.Model
	Quantity  int         `gorm:"not null" json:"quantity"`
	UnitPrice int64       `gorm:"not null" json:"unitPrice"`
	Total     int64       `gorm:"not null" json:"total"`
	Address   string      `json:"address"`
	Status    OrderStatus `gorm:"not null;default:pending" json:"status"`

	UserID    uint    `gorm:"not null;index" json:"userId"`
	User      User    `json:"-"`
	ProductID uint    `gorm:"not null;index" json:"productId"`
	Product   Product `json:"-"` // preload only for detail
}
