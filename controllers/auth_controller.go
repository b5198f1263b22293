package controllers

import (
	"net/http"

	"marketplace/dto"
	"marketplace/middlewares"
	"marketplace/pkg/resp"
	"marketplace/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	body := middlewares.Validated[dto.RegisterBody](c, middlewares.Body)

	user, tokens, err := a.Svc.Register(c.Request.Context(), dto.NewCreateUser(body))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "tokens": tokens})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	body := middlewares.Validated[dto.LoginBody](c, middlewares.Body)

	user, tokens, err := a.Svc.Login(c.Request.Context(), dto.NewLoginUser(body))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "tokens": tokens})
}

// POST /auth/refresh
func (a *AuthController) Refresh(c *gin.Context) {
	body := middlewares.Validated[dto.RefreshBody](c, middlewares.Body)

	tokens, err := a.Svc.Refresh(c.Request.Context(), body.RefreshToken)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "tokens", tokens)
}
