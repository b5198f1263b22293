package services

import (
	"context"

	"marketplace/entity"
	"marketplace/pkg/apperr"

	"gorm.io/gorm"
)

// Cancel moves a pending order of userID to cancelled and puts the
// units back in stock.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	o, err := s.GetForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderPending, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("only pending orders can be cancelled")
		}
		return s.ProductRepo.IncrementStock(tx, o.ProductID, o.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return s.GetForUser(ctx, userID, orderID)
}
