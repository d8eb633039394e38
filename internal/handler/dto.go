package handler

import (
	"time"

	"github.com/msomdec/account-service/internal/domain"
	"github.com/msomdec/account-service/internal/service"
)

// UserDTO is the JSON representation of a user. The password hash is never
// part of it.
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// AuthDTO is returned by register and login.
type AuthDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

func toAuthDTO(res *service.AuthResult) AuthDTO {
	return AuthDTO{User: toUserDTO(res.User), Token: res.Token}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r registerRequest) input() service.RegisterInput {
	return service.RegisterInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}

func (r updateUserRequest) input() service.UpdateUserInput {
	return service.UpdateUserInput{Name: r.Name, Email: r.Email, IsActive: r.IsActive}
}
