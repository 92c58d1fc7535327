package usecase

import (
	"context"
	"fmt"

	"abc-cinemas/internal/data/repository"
	"abc-cinemas/internal/dto/response"

	"go.uber.org/zap"
)

type BranchService interface {
	GetBranches(ctx context.Context) (*response.BranchListResponse, error)
}

type branchService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBranchService(repo *repository.Repository, log *zap.Logger) BranchService {
	return &branchService{
		repo: repo,
		log:  log.With(zap.String("service", "branch")),
	}
}

func (s *branchService) GetBranches(ctx context.Context) (*response.BranchListResponse, error) {
	branches, err := s.repo.Branch.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get branches: %w", err)
	}

	resp := response.BranchesToResponse(branches)
	return &resp, nil
}
