package services

import (
	"context"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

type CartView struct {
	Items    []entity.CartEntry `json:"items"`
	Subtotal int64              `json:"subtotal"`
}

func (s *CartService) Get(ctx context.Context, userID uint) (*CartView, error) {
	entries, err := s.CartRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var subtotal int64
	for _, e := range entries {
		subtotal += e.Product.Price * int64(e.Quantity)
	}
	if entries == nil {
		entries = []entity.CartEntry{}
	}
	return &CartView{Items: entries, Subtotal: subtotal}, nil
}

// Add puts one unit of the product in the cart.
func (s *CartService) Add(ctx context.Context, userID, productID uint) (*CartView, error) {
	p, err := s.ProductRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, apperr.NotFoundIfMissing(err, "product")
	}
	if p.Stock <= 0 {
		return nil, apperr.Conflict("product is out of stock")
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, userID, productID, 1)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *CartService) Remove(ctx context.Context, userID, productID uint) (*CartView, error) {
	affected, err := s.CartRepo.RemoveItem(s.DB.WithContext(ctx), userID, productID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.NotFound("product not in cart")
	}
	return s.Get(ctx, userID)
}
