package services

import (
	"net/http"
	"testing"
	"time"

	"marketplace/dto"
	"marketplace/entity"
	"marketplace/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(repository.NewReviewRepository(db), repository.NewProductRepository(db))
}

func TestReview_WriteAndList(t *testing.T) {
	db := newTestDB(t)
	seller := seedUser(t, db, "seller@x.io", entity.RoleSeller)
	alice := seedUser(t, db, "alice@x.io", entity.RoleCustomer)
	bob := seedUser(t, db, "bob@x.io", entity.RoleCustomer)
	p := seedProduct(t, db, seller.ID, 100, 1)
	svc := newReviewService(db)

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rev, err := svc.Write(ctx, dto.CreateReview{Rating: 4, Text: "ok", Date: day, UserID: alice.ID, ProductID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, 4, rev.Rating)
	assert.Equal(t, []string{}, rev.Images)

	_, err = svc.Write(ctx, dto.CreateReview{
		Rating: 2, Date: day.Add(24 * time.Hour), UserID: bob.ID, ProductID: p.ID,
		Images: []string{"/uploads/reviews/b.png"},
	})
	require.NoError(t, err)

	list, err := svc.ListForProduct(ctx, p.ID, dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, bob.ID, list.Items[0].UserID, "newest first")
	assert.Equal(t, []string{"/uploads/reviews/b.png"}, list.Items[0].Images)
	assert.Equal(t, int64(2), list.Aggregate.Total)
	assert.InDelta(t, 3.0, list.Aggregate.AvgRating, 0.001)
	assert.Equal(t, int64(2), list.Meta.Total)
}

func TestReview_UnknownProduct(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.io", entity.RoleCustomer)
	svc := newReviewService(db)

	_, err := svc.Write(ctx, dto.CreateReview{Rating: 4, UserID: alice.ID, ProductID: 77})
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.ListForProduct(ctx, 77, dto.PageQuery{})
	requireStatus(t, err, http.StatusNotFound)
}

func TestReview_UpdateKeepsOrReplacesImages(t *testing.T) {
	db := newTestDB(t)
	seller := seedUser(t, db, "seller@x.io", entity.RoleSeller)
	alice := seedUser(t, db, "alice@x.io", entity.RoleCustomer)
	p := seedProduct(t, db, seller.ID, 100, 1)
	svc := newReviewService(db)

	rev, err := svc.Write(ctx, dto.CreateReview{Rating: 4, UserID: alice.ID, ProductID: p.ID, Images: []string{"/uploads/reviews/old.png"}})
	require.NoError(t, err)

	updated, replaced, err := svc.Update(ctx, dto.UpdateReview{ReviewID: rev.ID, ProductID: p.ID, Rating: 5, Text: "better"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, []string{"/uploads/reviews/old.png"}, updated.Images)
	assert.Nil(t, replaced)

	updated, replaced, err = svc.Update(ctx, dto.UpdateReview{
		ReviewID: rev.ID, ProductID: p.ID, Rating: 5, Images: []string{"/uploads/reviews/new.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/reviews/new.png"}, updated.Images)
	assert.Equal(t, []string{"/uploads/reviews/old.png"}, replaced)

	// wrong product in the URL
	_, _, err = svc.Update(ctx, dto.UpdateReview{ReviewID: rev.ID, ProductID: p.ID + 1, Rating: 1})
	requireStatus(t, err, http.StatusNotFound)
}

func TestReview_DeleteAndBelongsTo(t *testing.T) {
	db := newTestDB(t)
	seller := seedUser(t, db, "seller@x.io", entity.RoleSeller)
	alice := seedUser(t, db, "alice@x.io", entity.RoleCustomer)
	bob := seedUser(t, db, "bob@x.io", entity.RoleCustomer)
	p := seedProduct(t, db, seller.ID, 100, 1)
	svc := newReviewService(db)

	rev, err := svc.Write(ctx, dto.CreateReview{Rating: 3, UserID: alice.ID, ProductID: p.ID})
	require.NoError(t, err)

	owns, err := svc.BelongsTo(ctx, rev.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, owns)
	owns, err = svc.BelongsTo(ctx, rev.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, owns)

	deleted, err := svc.Delete(ctx, p.ID, rev.ID)
	require.NoError(t, err)
	assert.Equal(t, rev.ID, deleted.ID)

	_, err = svc.BelongsTo(ctx, rev.ID, alice.ID)
	requireStatus(t, err, http.StatusNotFound)
}
