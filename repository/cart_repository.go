package repository

import (
	"context"
	"errors"

	"marketplace/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser returns the entries with their products; an empty cart is
// an empty slice, not an error.
func (r *CartRepository) ListForUser(ctx context.Context, userID uint) ([]entity.CartEntry, error) {
	var entries []entity.CartEntry
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Product").
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

// UpsertItem adds qty to an existing line or creates a new one.
func (r *CartRepository) UpsertItem(tx *gorm.DB, userID, productID uint, qty int) error {
	var exist entity.CartEntry
	err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&entity.CartEntry{UserID: userID, ProductID: productID, Quantity: qty}).Error
}

// RemoveItem hard-deletes the line so the unique (user, product) index
// is free for the next add.
func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, productID uint) (int64, error) {
	res := tx.Unscoped().
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&entity.CartEntry{})
	return res.RowsAffected, res.Error
}

// RemoveAllForProduct clears a product from every cart, used when the
// product itself goes away.
func (r *CartRepository) RemoveAllForProduct(tx *gorm.DB, productID uint) error {
	return tx.Unscoped().Where("product_id = ?", productID).Delete(&entity.CartEntry{}).Error
}
