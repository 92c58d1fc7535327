package request

import "strings"

type CreateUserRequest struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" validate:"required,min=6,max=30"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

type UpdateUserRequest struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=255"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,min=6,max=30"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims the text fields and lower-cases the email so validation sees the stored form.
func (r *CreateUserRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = normalizeEmail(r.Email)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Role = strings.TrimSpace(r.Role)
}

func (r *UpdateUserRequest) Normalize() {
	trimPtr(r.FullName)
	trimPtr(r.DateOfBirth)
	trimPtr(r.PhoneNumber)
	trimPtr(r.Role)
	if r.Email != nil {
		*r.Email = normalizeEmail(*r.Email)
	}
}

func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
