package services

import (
	"context"

	"marketplace/dto"
	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// OrderNotifier is told about orders after they are committed.
type OrderNotifier interface {
	OrderCreated(sellerID uint, order *entity.Order)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	ProductRepo *repository.ProductRepository
	CartRepo    *repository.CartRepository
	Notifier    OrderNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	cartRepo *repository.CartRepository,
	notifier OrderNotifier,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, ProductRepo: productRepo, CartRepo: cartRepo, Notifier: notifier}
}

// MakeOrder buys quantity units of one product. Stock is decremented
// with a guarded update, so concurrent buyers cannot oversell. The
// product leaves the buyer's cart in the same transaction.
func (s *OrderService) MakeOrder(ctx context.Context, in dto.MakeOrder) (*entity.Order, error) {
	p, err := s.ProductRepo.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, apperr.NotFoundIfMissing(err, "product")
	}

	order := &entity.Order{
		Quantity:  in.Quantity,
		UnitPrice: p.Price,
		Total:     p.Price * int64(in.Quantity),
		Address:   in.Address,
		Status:    entity.OrderPending,
		UserID:    in.UserID,
		ProductID: p.ID,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.ProductRepo.DecrementStock(tx, p.ID, in.Quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("insufficient stock")
		}
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		_, err = s.CartRepo.RemoveItem(tx, in.UserID, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("order_id", order.ID).
		Uint("product_id", p.ID).
		Uint("user_id", in.UserID).
		Int("quantity", in.Quantity).
		Msg("order placed")

	if s.Notifier != nil {
		s.Notifier.OrderCreated(p.SellerID, order)
	}
	return order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID uint, q dto.PageQuery) ([]entity.Order, PageMeta, error) {
	offset := q.Normalize()
	items, total, err := s.Repo.ListOrdersForUser(ctx, userID, q.Limit, offset)
	if err != nil {
		return nil, PageMeta{}, err
	}
	if items == nil {
		items = []entity.Order{}
	}
	return items, PageMeta{Page: q.Page, Limit: q.Limit, Total: total}, nil
}

func (s *OrderService) GetForUser(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(ctx, userID, orderID)
	if err != nil {
		return nil, apperr.NotFoundIfMissing(err, "order")
	}
	return o, nil
}
