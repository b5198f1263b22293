package services

import (
	"context"

	"marketplace/dto"
	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository"
)

type ReviewService struct {
	Repo        *repository.ReviewRepository
	ProductRepo *repository.ProductRepository
}

func NewReviewService(repo *repository.ReviewRepository, productRepo *repository.ProductRepository) *ReviewService {
	return &ReviewService{Repo: repo, ProductRepo: productRepo}
}

type ReviewList struct {
	Items     []entity.Review            `json:"items"`
	Meta      PageMeta                   `json:"meta"`
	Aggregate repository.ReviewAggregate `json:"aggregate"`
}

func (s *ReviewService) Write(ctx context.Context, in dto.CreateReview) (*entity.Review, error) {
	if err := s.ensureProduct(ctx, in.ProductID); err != nil {
		return nil, err
	}
	rev := &entity.Review{
		Rating:    in.Rating,
		Text:      in.Text,
		Date:      in.Date,
		Images:    in.Images,
		UserID:    in.UserID,
		ProductID: in.ProductID,
	}
	if rev.Images == nil {
		rev.Images = []string{}
	}
	if err := s.Repo.Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// Update rewrites rating, text and date; images are replaced only when
// new ones were uploaded. The previous image paths are returned so the
// caller can drop the files.
func (s *ReviewService) Update(ctx context.Context, in dto.UpdateReview) (*entity.Review, []string, error) {
	rev, err := s.find(ctx, in.ProductID, in.ReviewID)
	if err != nil {
		return nil, nil, err
	}

	var replaced []string
	rev.Rating = in.Rating
	rev.Text = in.Text
	rev.Date = in.Date
	if in.Images != nil {
		replaced = rev.Images
		rev.Images = in.Images
	}
	if err := s.Repo.Save(ctx, rev); err != nil {
		return nil, nil, err
	}
	return rev, replaced, nil
}

func (s *ReviewService) Delete(ctx context.Context, productID, reviewID uint) (*entity.Review, error) {
	rev, err := s.find(ctx, productID, reviewID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(ctx, rev.ID); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) ListForProduct(ctx context.Context, productID uint, q dto.PageQuery) (*ReviewList, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	offset := q.Normalize()

	items, err := s.Repo.ListByProduct(ctx, productID, q.Limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.Review{}
	}
	agg, err := s.Repo.Aggregate(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &ReviewList{
		Items:     items,
		Meta:      PageMeta{Page: q.Page, Limit: q.Limit, Total: agg.Total},
		Aggregate: agg,
	}, nil
}

// BelongsTo reports whether userID authored the review.
func (s *ReviewService) BelongsTo(ctx context.Context, reviewID, userID uint) (bool, error) {
	rev, err := s.Repo.FindByID(ctx, reviewID)
	if err != nil {
		return false, apperr.NotFoundIfMissing(err, "review")
	}
	return rev.UserID == userID, nil
}

// find loads a review and checks it hangs off the product in the URL.
func (s *ReviewService) find(ctx context.Context, productID, reviewID uint) (*entity.Review, error) {
	rev, err := s.Repo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, apperr.NotFoundIfMissing(err, "review")
	}
	if rev.ProductID != productID {
		return nil, apperr.NotFound("review not found")
	}
	return rev, nil
}

func (s *ReviewService) ensureProduct(ctx context.Context, productID uint) error {
	if _, err := s.ProductRepo.FindByID(ctx, productID); err != nil {
		return apperr.NotFoundIfMissing(err, "product")
	}
	return nil
}
