package usecase

import (
	"context"
	"time"

	"abc-cinemas/internal/data/repository"
	"abc-cinemas/pkg/utils"
)

type Banner struct {
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Status struct {
	API       string    `json:"api"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

type StatusService interface {
	Banner() Banner
	Status(ctx context.Context) Status
}

type statusService struct {
	repo    *repository.Repository
	name    string
	version string
	now     func() time.Time
}

func NewStatusService(repo *repository.Repository, config *utils.Config) StatusService {
	return &statusService{
		repo:    repo,
		name:    config.App.Name,
		version: config.App.Version,
		now:     time.Now,
	}
}

func (s *statusService) Banner() Banner {
	return Banner{
		Message:   s.name + " API is running",
		Version:   s.version,
		Status:    "healthy",
		Timestamp: s.now().UTC(),
	}
}

// Status pings the pool with a short deadline so a stuck database cannot stall the probe.
func (s *statusService) Status(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	database := "connected"
	if err := s.repo.Ping(ctx); err != nil {
		database = "disconnected"
	}

	return Status{
		API:       "online",
		Database:  database,
		Timestamp: s.now().UTC(),
	}
}
