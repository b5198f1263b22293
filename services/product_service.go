package services

import (
	"context"

	"marketplace/dto"
	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository"

	"gorm.io/gorm"
)

type ProductService struct {
	Repo     *repository.ProductRepository
	CartRepo *repository.CartRepository
}

func NewProductService(repo *repository.ProductRepository, cartRepo *repository.CartRepository) *ProductService {
	return &ProductService{Repo: repo, CartRepo: cartRepo}
}

func (s *ProductService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFoundIfMissing(err, "product")
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context, q dto.ProductQuery) ([]entity.Product, PageMeta, error) {
	offset := q.Normalize()
	items, total, err := s.Repo.List(ctx, repository.ProductFilter{
		Name:     q.Name,
		Category: q.Category,
		SellerID: q.SellerID,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Limit:    q.Limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, PageMeta{}, err
	}
	if items == nil {
		items = []entity.Product{}
	}
	return items, PageMeta{Page: q.Page, Limit: q.Limit, Total: total}, nil
}

func (s *ProductService) Create(ctx context.Context, in dto.CreateProduct) (*entity.Product, error) {
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
		SellerID:    in.SellerID,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update overwrites the editable fields. Ownership is checked upstream.
// When a new image replaces an old one, the old path is returned.
func (s *ProductService) Update(ctx context.Context, in dto.UpdateProduct) (*entity.Product, string, error) {
	old, err := s.Get(ctx, in.ProductID)
	if err != nil {
		return nil, "", err
	}

	fields := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"category":    in.Category,
		"price":       in.Price,
		"stock":       in.Stock,
	}
	replaced := ""
	if in.Image != "" {
		fields["image"] = in.Image
		replaced = old.Image
	}
	if err := s.Repo.Update(ctx, in.ProductID, fields); err != nil {
		return nil, "", err
	}
	p, err := s.Get(ctx, in.ProductID)
	if err != nil {
		return nil, "", err
	}
	return p, replaced, nil
}

// Delete removes the product, takes it out of every cart and returns it
// as it was. Orders keep pointing at the soft-deleted row.
func (s *ProductService) Delete(ctx context.Context, id uint) (*entity.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	err = s.Repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.RemoveAllForProduct(tx, id); err != nil {
			return err
		}
		return s.Repo.Delete(tx, id)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// BelongsTo reports whether userID is the product's seller.
func (s *ProductService) BelongsTo(ctx context.Context, productID, userID uint) (bool, error) {
	p, err := s.Get(ctx, productID)
	if err != nil {
		return false, err
	}
	return p.SellerID == userID, nil
}
