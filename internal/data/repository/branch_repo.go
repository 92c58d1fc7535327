package repository

import (
	"context"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/pkg/database"

	"go.uber.org/zap"
)

type BranchRepository interface {
	FindAll(ctx context.Context) ([]*entity.Branch, error)
}

type branchRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBranchRepository(db database.PgxIface, log *zap.Logger) BranchRepository {
	return &branchRepository{
		db:  db,
		log: log.With(zap.String("repository", "branch")),
	}
}

func (r *branchRepository) FindAll(ctx context.Context) ([]*entity.Branch, error) {
	query := `
		SELECT id, name, location, created_at
		FROM branches
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all branches", zap.Error(err))
		return nil, mapError("find branches", err)
	}
	defer rows.Close()

	branches := []*entity.Branch{}
	for rows.Next() {
		var branch entity.Branch
		if err := rows.Scan(&branch.ID, &branch.Name, &branch.Location, &branch.CreatedAt); err != nil {
			r.log.Error("Failed to scan branch row", zap.Error(err))
			return nil, mapError("scan branch", err)
		}
		branches = append(branches, &branch)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("iterate branches", err)
	}

	return branches, nil
}
