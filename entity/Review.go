package entity

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating int       `gorm:"not null" json:"rating"`
	Text   string    `json:"text"`
	Date   time.Time `json:"date"`
	Images []string  `gorm:"serializer:json" json:"images"`

	UserID    uint    `gorm:"not null;index" json:"userId"`
	User      User    `json:"-"`
	ProductID uint    `gorm:"not null;index" json:"productId"`
	Product   Product `json:"-"`
}
