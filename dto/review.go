package dto

import "time"

// ReviewParams: POST /products/:id/reviews
type ReviewParams struct {
	ProductID uint `uri:"id" binding:"required,min=1"`
}

// ReviewIDParams: PUT|DELETE /products/:id/reviews/:reviewId
type ReviewIDParams struct {
	ProductID uint `uri:"id" binding:"required,min=1"`
	ReviewID  uint `uri:"reviewId" binding:"required,min=1"`
}

// ReviewBody accepts JSON or multipart form fields.
type ReviewBody struct {
	Rating int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" form:"text" binding:"max=2000"`
	Date   string `json:"date" form:"date" binding:"omitempty,isodate"`
}

type CreateReview struct {
	Rating    int
	Text      string
	Date      time.Time
	UserID    uint
	ProductID uint
	Images    []string
}

// NewCreateReview builds the DTO; a missing date means "now".
func NewCreateReview(body ReviewBody, userID, productID uint, images []string) CreateReview {
	date := time.Now()
	if body.Date != "" {
		date = coerceDate(body.Date)
	}
	return CreateReview{
		Rating:    body.Rating,
		Text:      body.Text,
		Date:      date,
		UserID:    userID,
		ProductID: productID,
		Images:    images,
	}
}

type UpdateReview struct {
	ReviewID  uint
	ProductID uint
	Rating    int
	Text      string
	Date      time.Time
	// nil keeps the stored images
	Images []string
}

func NewUpdateReview(body ReviewBody, params ReviewIDParams, images []string) UpdateReview {
	date := time.Now()
	if body.Date != "" {
		date = coerceDate(body.Date)
	}
	return UpdateReview{
		ReviewID:  params.ReviewID,
		ProductID: params.ProductID,
		Rating:    body.Rating,
		Text:      body.Text,
		Date:      date,
		Images:    images,
	}
}
