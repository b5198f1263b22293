package dto

import (
	"strings"
	"time"

	"marketplace/entity"
)

type RegisterBody struct {
	Name      string `json:"name" binding:"required,max=120"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,max=72"`
	BirthDate string `json:"birthDate" binding:"omitempty,isodate"`
	Role      string `json:"role" binding:"omitempty,oneof=customer seller"`
}

type LoginBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshBody struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type UpdateProfileBody struct {
	Name      string `json:"name" binding:"required,max=120"`
	BirthDate string `json:"birthDate" binding:"required,isodate"`
}

type CreateUser struct {
	Name      string
	Email     string
	Password  string
	BirthDate *time.Time
	Role      entity.Role
}

func NewCreateUser(body RegisterBody) CreateUser {
	role := entity.RoleCustomer
	if body.Role != "" {
		role = entity.Role(body.Role)
	}
	return CreateUser{
		Name:      strings.TrimSpace(body.Name),
		Email:     strings.ToLower(strings.TrimSpace(body.Email)),
		Password:  body.Password,
		BirthDate: coerceDatePtr(body.BirthDate),
		Role:      role,
	}
}

type LoginUser struct {
	Email    string
	Password string
}

func NewLoginUser(body LoginBody) LoginUser {
	return LoginUser{
		Email:    strings.ToLower(strings.TrimSpace(body.Email)),
		Password: body.Password,
	}
}

type UpdateProfile struct {
	Name      string
	BirthDate time.Time
	UserID    uint
}

func NewUpdateProfile(body UpdateProfileBody, userID uint) UpdateProfile {
	return UpdateProfile{
		Name:      body.Name,
		BirthDate: coerceDate(body.BirthDate),
		UserID:    userID,
	}
}
