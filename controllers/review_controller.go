package controllers

import (
	"net/http"

	"marketplace/dto"
	"marketplace/middlewares"
	"marketplace/pkg/resp"
	"marketplace/services"
	"marketplace/storage"

	"github.com/gin-gonic/gin"
)

const reviewImageKind = "reviews"

type ReviewController struct {
	Svc   *services.ReviewService
	Files *storage.Local
}

func NewReviewController(s *services.ReviewService, files *storage.Local) *ReviewController {
	return &ReviewController{Svc: s, Files: files}
}

// POST /products/:id/reviews
func (rc *ReviewController) WriteReview(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	params := middlewares.Validated[dto.ReviewParams](c, middlewares.Params)
	body := middlewares.Validated[dto.ReviewBody](c, middlewares.Body)

	images, err := rc.Files.SaveAll(reviewImageKind, middlewares.UploadedFiles(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}

	review, err := rc.Svc.Write(c.Request.Context(), dto.NewCreateReview(body, p.UserID(), params.ProductID, images))
	if err != nil {
		rc.Files.RemoveAll(images)
		resp.Fail(c, err)
		return
	}
	resp.Created(c, "review", review)
}

// PUT /products/:id/reviews/:reviewId
func (rc *ReviewController) UpdateReview(c *gin.Context) {
	if _, err := requirePrincipal(c); err != nil {
		resp.Fail(c, err)
		return
	}
	params := middlewares.Validated[dto.ReviewIDParams](c, middlewares.Params)
	body := middlewares.Validated[dto.ReviewBody](c, middlewares.Body)

	var images []string
	if files := middlewares.UploadedFiles(c); len(files) > 0 {
		saved, err := rc.Files.SaveAll(reviewImageKind, files)
		if err != nil {
			resp.Fail(c, err)
			return
		}
		images = saved
	}

	review, replaced, err := rc.Svc.Update(c.Request.Context(), dto.NewUpdateReview(body, params, images))
	if err != nil {
		rc.Files.RemoveAll(images)
		resp.Fail(c, err)
		return
	}
	rc.Files.RemoveAll(replaced)
	resp.OK(c, "review", review)
}

// DELETE /products/:id/reviews/:reviewId
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	if _, err := requirePrincipal(c); err != nil {
		resp.Fail(c, err)
		return
	}
	params := middlewares.Validated[dto.ReviewIDParams](c, middlewares.Params)

	review, err := rc.Svc.Delete(c.Request.Context(), params.ProductID, params.ReviewID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	rc.Files.RemoveAll(review.Images)
	resp.OK(c, "review", review)
}

// GET /products/:id/reviews (public)
func (rc *ReviewController) GetProductReviews(c *gin.Context) {
	params := middlewares.Validated[dto.IDParams](c, middlewares.Params)
	q := middlewares.Validated[dto.PageQuery](c, middlewares.Query)

	list, err := rc.Svc.ListForProduct(c.Request.Context(), params.ID, q)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": list.Items, "meta": list.Meta, "aggregate": list.Aggregate})
}
