package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string     `json:"name"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `json:"-"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Role      Role       `gorm:"not null;default:customer" json:"role"`

	// preload only where needed
	Products    []Product   `gorm:"foreignKey:SellerID" json:"-"`
	Reviews     []Review    `json:"-"`
	CartEntries []CartEntry `json:"-"`
	Orders      []Order     `json:"-"`
}
