package response

import (
	"time"

	"abc-cinemas/internal/data/entity"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID               int64     `json:"user_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	DateOfBirth      string    `json:"date_of_birth"`
	PhoneNumber      string    `json:"phone_number"`
	RegistrationDate time.Time `json:"registration_date"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		FullName:         user.FullName,
		Email:            user.Email,
		Role:             string(user.Role),
		DateOfBirth:      user.DateOfBirth.Format(entity.DateLayout),
		PhoneNumber:      user.PhoneNumber,
		RegistrationDate: user.RegistrationDate,
	}
}
