package controllers

import (
	"marketplace/dto"
	"marketplace/middlewares"
	"marketplace/pkg/resp"
	"marketplace/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	cart, err := h.Svc.Get(c.Request.Context(), p.UserID())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "cart", cart)
}

// POST /products/:id/cart-add
func (h *CartController) AddToCart(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	params := middlewares.Validated[dto.IDParams](c, middlewares.Params)

	cart, err := h.Svc.Add(c.Request.Context(), p.UserID(), params.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "cart", cart)
}

// DELETE /products/:id/cart-remove
func (h *CartController) RemoveFromCart(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	params := middlewares.Validated[dto.IDParams](c, middlewares.Params)

	cart, err := h.Svc.Remove(c.Request.Context(), p.UserID(), params.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "cart", cart)
}
