package repository

import (
	"context"
	"fmt"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/database"

	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `user_id, full_name, email, password, role, date_of_birth, phone_number, registration_date`

func scanUser(row interface{ Scan(dest ...any) error }, user *entity.User) error {
	return row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.DateOfBirth,
		&user.PhoneNumber,
		&user.RegistrationDate,
	)
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (full_name, email, password, role, date_of_birth, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id, registration_date
	`

	err := ur.db.QueryRow(ctx, query,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.DateOfBirth,
		user.PhoneNumber,
	).Scan(&user.ID, &user.RegistrationDate)

	if err != nil {
		err = mapError(fmt.Sprintf("create user %s", user.Email), err)
		if isClientError(err) {
			ur.log.Warn("User not created", zap.Error(err), zap.String("email", user.Email))
			return err
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return err
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user entity.User
	if err := scanUser(ur.db.QueryRow(ctx, query, id), &user); err != nil {
		err = mapError(fmt.Sprintf("find user %d", id), err)
		if !isClientError(err) {
			ur.log.Error("Failed to find user by ID", zap.Error(err), zap.Int64("user_id", id))
		}
		return nil, err
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	var user entity.User
	if err := scanUser(ur.db.QueryRow(ctx, query, email), &user); err != nil {
		err = mapError("find user by email", err)
		if !isClientError(err) {
			ur.log.Error("Failed to find user by email", zap.Error(err))
		}
		return nil, err
	}

	return &user, nil
}

func (ur *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY user_id LIMIT $1 OFFSET $2`

	rows, err := ur.db.Query(ctx, query, limit, offset)
	if err != nil {
		ur.log.Error("Failed to find all users", zap.Error(err))
		return nil, mapError("find users", err)
	}
	defer rows.Close()

	users := []*entity.User{}
	for rows.Next() {
		var user entity.User
		if err := scanUser(rows, &user); err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, mapError("scan user", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("iterate users", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := ur.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		ur.log.Error("Failed to count users", zap.Error(err))
		return 0, mapError("count users", err)
	}
	return total, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, password = $4, role = $5,
		    date_of_birth = $6, phone_number = $7
		WHERE user_id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.DateOfBirth,
		user.PhoneNumber,
	)
	if err != nil {
		err = mapError(fmt.Sprintf("update user %d", user.ID), err)
		if !isClientError(err) {
			ur.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", user.ID))
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", user.ID, apperrors.ErrNotFound)
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id int64) error {
	result, err := ur.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		err = mapError(fmt.Sprintf("delete user %d", id), err)
		if !isClientError(err) {
			ur.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", id))
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
	}

	ur.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

func (ur *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := ur.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`, id).Scan(&exists)
	if err != nil {
		ur.log.Error("Failed to check user existence", zap.Error(err), zap.Int64("user_id", id))
		return false, mapError("check user exists", err)
	}
	return exists, nil
}
