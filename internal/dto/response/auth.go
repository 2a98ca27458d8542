package response

import (
	"time"

	"nightcare/internal/data/entity"
)

type UserResponse struct {
	ID        int64     `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Status string       `json:"status"`
	User   UserResponse `json:"user"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}

func LoginToResponse(user *entity.User) *LoginResponse {
	return &LoginResponse{
		Status: "ok",
		User:   UserToResponse(user),
	}
}
