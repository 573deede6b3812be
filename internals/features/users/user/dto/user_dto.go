package dto

import (
	"time"

	"desaku_backend/internals/features/users/user/model"
)

/* ==========================
   Requests
========================== */

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName string  `json:"full_name" validate:"required,min=3,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	NIK      *string `json:"nik" validate:"omitempty,len=16,numeric"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Role     string  `json:"role" validate:"omitempty,oneof=user admin"`
}

// UpdateProfileRequest sengaja tidak punya field role/password:
// role diubah lewat endpoint admin tersendiri, password lewat change-password.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

/* ==========================
   Responses (password tidak pernah ikut)
========================== */

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	NIK       *string   `json:"nik,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserModel(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		NIK:       u.NIK,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func FromUserModels(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromUserModel(&users[i]))
	}
	return out
}
