package dto

import (
	"testing"
	"time"

	"marketplace/entity"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDate("2024-03-05T10:20:30Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC), d)

	_, ok = ParseDate("01/02/2024")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestNewCreateReview_KeepsFieldsAndCoercesDate(t *testing.T) {
	body := ReviewBody{Rating: 4, Text: "ok", Date: "2024-01-01"}
	images := []string{"/uploads/reviews/a.png"}

	got := NewCreateReview(body, 7, 5, images)

	assert.Equal(t, CreateReview{
		Rating:    4,
		Text:      "ok",
		Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UserID:    7,
		ProductID: 5,
		Images:    images,
	}, got)
}

func TestNewCreateReview_EmptyDateIsNow(t *testing.T) {
	before := time.Now()
	got := NewCreateReview(ReviewBody{Rating: 3}, 1, 2, nil)

	assert.False(t, got.Date.Before(before))
	assert.WithinDuration(t, time.Now(), got.Date, time.Second)
	assert.Nil(t, got.Images)
}

func TestNewUpdateReview(t *testing.T) {
	got := NewUpdateReview(
		ReviewBody{Rating: 2, Text: "meh", Date: "2023-12-31T08:00:00Z"},
		ReviewIDParams{ProductID: 5, ReviewID: 9},
		nil,
	)

	assert.Equal(t, uint(9), got.ReviewID)
	assert.Equal(t, uint(5), got.ProductID)
	assert.Equal(t, 2, got.Rating)
	assert.Equal(t, "meh", got.Text)
	assert.Equal(t, time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC), got.Date)
	assert.Nil(t, got.Images)
}

func TestNewUpdateProfile(t *testing.T) {
	got := NewUpdateProfile(UpdateProfileBody{Name: "Ann", BirthDate: "1990-06-15"}, 3)

	assert.Equal(t, UpdateProfile{
		Name:      "Ann",
		BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		UserID:    3,
	}, got)
}

func TestNewCreateUser(t *testing.T) {
	got := NewCreateUser(RegisterBody{
		Name:     " Bob ",
		Email:    "Bob@Example.COM",
		Password: "secret1",
	})
	assert.Equal(t, "Bob", got.Name)
	assert.Equal(t, "bob@example.com", got.Email)
	assert.Equal(t, "secret1", got.Password)
	assert.Equal(t, entity.RoleCustomer, got.Role)
	assert.Nil(t, got.BirthDate)

	seller := NewCreateUser(RegisterBody{Email: "s@x.io", Role: "seller", BirthDate: "2000-02-02"})
	assert.Equal(t, entity.RoleSeller, seller.Role)
	require.NotNil(t, seller.BirthDate)
	assert.Equal(t, 2000, seller.BirthDate.Year())
}

func TestNewCreateProductAndOrder(t *testing.T) {
	body := ProductBody{Name: "Mug", Description: "blue", Category: "kitchen", Price: 1299, Stock: 4}

	p := NewCreateProduct(body, 11, "/uploads/products/m.png")
	assert.Equal(t, CreateProduct{
		Name: "Mug", Description: "blue", Category: "kitchen",
		Price: 1299, Stock: 4, Image: "/uploads/products/m.png", SellerID: 11,
	}, p)

	u := NewUpdateProduct(body, 5, "")
	assert.Equal(t, uint(5), u.ProductID)
	assert.Empty(t, u.Image)

	o := NewMakeOrder(OrderBody{Quantity: 2, Address: "1 Main St"}, 5, 7)
	assert.Equal(t, MakeOrder{ProductID: 5, UserID: 7, Quantity: 2, Address: "1 Main St"}, o)
}

func TestPageQuery_Bounds(t *testing.T) {
	v := binding.Validator
	assert.NoError(t, v.ValidateStruct(&PageQuery{Page: MaxPage, Limit: 100}))
	assert.Error(t, v.ValidateStruct(&PageQuery{Page: MaxPage + 1}))
	assert.Error(t, v.ValidateStruct(&ProductQuery{PageQuery: PageQuery{Page: MaxPage + 1}}))
}

func TestPageQueryNormalize(t *testing.T) {
	q := PageQuery{}
	assert.Equal(t, 0, q.Normalize())
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)

	q = PageQuery{Page: 3, Limit: 10}
	assert.Equal(t, 20, q.Normalize())
}
