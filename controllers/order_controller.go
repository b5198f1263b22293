package controllers

import (
	"net/http"

	"marketplace/dto"
	"marketplace/middlewares"
	"marketplace/pkg/resp"
	"marketplace/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /products/:id/order
func (oc *OrderController) MakeOrder(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	params := middlewares.Validated[dto.IDParams](c, middlewares.Params)
	body := middlewares.Validated[dto.OrderBody](c, middlewares.Body)

	order, err := oc.Svc.MakeOrder(c.Request.Context(), dto.NewMakeOrder(body, params.ID, p.UserID()))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, "order", order)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	q := middlewares.Validated[dto.PageQuery](c, middlewares.Query)

	items, meta, err := oc.Svc.ListForUser(c.Request.Context(), p.UserID(), q)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": items, "meta": meta})
}

// GET /orders/:id (owner only)
func (oc *OrderController) Detail(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	params := middlewares.Validated[dto.IDParams](c, middlewares.Params)

	order, err := oc.Svc.GetForUser(c.Request.Context(), p.UserID(), params.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "order", order)
}

// PATCH /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	params := middlewares.Validated[dto.IDParams](c, middlewares.Params)

	order, err := oc.Svc.Cancel(c.Request.Context(), p.UserID(), params.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "order", order)
}
