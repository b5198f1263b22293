package repository

import (
	"context"

	"marketplace/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

type ReviewAggregate struct {
	AvgRating float64 `json:"avgRating"`
	Total     int64   `json:"total"`
}

func (r *ReviewRepository) Create(ctx context.Context, rev *entity.Review) error {
	return r.DB.WithContext(ctx).Create(rev).Error
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.WithContext(ctx).First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) Save(ctx context.Context, rev *entity.Review) error {
	return r.DB.WithContext(ctx).Save(rev).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&entity.Review{}, id).Error
}

// newest first
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID uint, limit, offset int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Aggregate(ctx context.Context, productID uint) (ReviewAggregate, error) {
	var a ReviewAggregate
	err := r.DB.WithContext(ctx).Model(&entity.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS total").
		Scan(&a).Error
	return a, err
}
