package controllers

import (
	"marketplace/dto"
	"marketplace/middlewares"
	"marketplace/pkg/resp"
	"marketplace/services"

	"github.com/gin-gonic/gin"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// PUT /users/profile
func (u *UserController) UpdateProfile(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	body := middlewares.Validated[dto.UpdateProfileBody](c, middlewares.Body)

	user, err := u.Svc.UpdateProfile(c.Request.Context(), dto.NewUpdateProfile(body, p.UserID()))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "user", user)
}

// GET /users/:id
func (u *UserController) GetProfile(c *gin.Context) {
	params := middlewares.Validated[dto.IDParams](c, middlewares.Params)

	user, err := u.Svc.FindByID(c.Request.Context(), params.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "user", user)
}

// GET /users/me
func (u *UserController) GetMyProfile(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "user", p.User)
}
