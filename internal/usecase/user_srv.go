package usecase

import (
	"context"
	"errors"
	"fmt"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/internal/data/repository"
	"abc-cinemas/internal/dto/request"
	"abc-cinemas/internal/dto/response"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUserByID(ctx context.Context, userID int64) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID int64) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
}

type userService struct {
	repo       *repository.Repository
	bcryptCost int
	log        *zap.Logger
}

func NewUserService(repo *repository.Repository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		repo:       repo,
		bcryptCost: config.Security.BcryptCost,
		log:        log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := us.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := us.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.Limit(), total), nil
}

func (us *userService) GetUserByID(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	dob, err := entity.ParseShowDate(req.DateOfBirth)
	if err != nil {
		return nil, invalidField("date_of_birth", "must be YYYY-MM-DD")
	}

	hash, err := utils.HashPassword(req.Password, us.bcryptCost)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", apperrors.ErrStorage)
	}

	role := entity.RoleUser
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	user := &entity.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		DateOfBirth:  dob,
		PhoneNumber:  req.PhoneNumber,
	}

	if err := us.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User created", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.DateOfBirth != nil {
		dob, err := entity.ParseShowDate(*req.DateOfBirth)
		if err != nil {
			return nil, invalidField("date_of_birth", "must be YYYY-MM-DD")
		}
		user.DateOfBirth = dob
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password, us.bcryptCost)
		if err != nil {
			us.log.Error("Failed to hash password", zap.Error(err), zap.Int64("user_id", userID))
			return nil, fmt.Errorf("hash password: %w", apperrors.ErrStorage)
		}
		user.PasswordHash = hash
	}

	if err := us.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	us.log.Info("User updated", zap.Int64("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := us.repo.User.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Login checks the credentials. Unknown email and wrong password look the same to the caller.
func (us *userService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	user, err := us.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			us.log.Warn("Login attempt for unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		us.log.Warn("Login attempt with wrong password", zap.Int64("user_id", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	us.log.Info("User logged in", zap.Int64("user_id", user.ID))

	resp := response.UserToResponse(user)
	return &resp, nil
}
