package repository

import (
	"context"
	"strings"

	"marketplace/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

type ProductFilter struct {
	Name     string
	Category string
	SellerID uint
	MinPrice int64
	MaxPrice int64
	Limit    int
	Offset   int
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns one page plus the total matching count.
func (r *ProductRepository) List(ctx context.Context, f ProductFilter) ([]entity.Product, int64, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Product{})
	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.SellerID != 0 {
		q = q.Where("seller_id = ?", f.SellerID)
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.Product
	err := q.Order("id DESC").Limit(f.Limit).Offset(f.Offset).Find(&items).Error
	return items, total, err
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// CreateBatch inserts many rows inside the caller's transaction.
func (r *ProductRepository) CreateBatch(tx *gorm.DB, rows []entity.Product) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, 100).Error
}

func (r *ProductRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.Product{}).Where("id = ?", id).Updates(fields).Error
}

// Delete soft-deletes the product inside the caller's transaction.
func (r *ProductRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Product{}, id).Error
}

// DecrementStock only succeeds when enough stock is left; zero rows
// affected means the guard failed.
func (r *ProductRepository) DecrementStock(tx *gorm.DB, id uint, qty int) (int64, error) {
	res := tx.Model(&entity.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected, res.Error
}

func (r *ProductRepository) IncrementStock(tx *gorm.DB, id uint, qty int) error {
	return tx.Model(&entity.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty)).Error
}
