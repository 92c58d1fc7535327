package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID               int64     `db:"user_id"`
	FullName         string    `db:"full_name"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password"`
	Role             UserRole  `db:"role"`
	DateOfBirth      time.Time `db:"date_of_birth"`
	PhoneNumber      string    `db:"phone_number"`
	RegistrationDate time.Time `db:"registration_date"`
}
