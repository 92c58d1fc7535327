package response

import "abc-cinemas/internal/data/entity"

type BranchResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
}

type BranchListResponse struct {
	Branches []BranchResponse `json:"branches"`
}

func BranchesToResponse(branches []*entity.Branch) BranchListResponse {
	out := make([]BranchResponse, len(branches))
	for i, branch := range branches {
		out[i] = BranchResponse{ID: branch.ID, Name: branch.Name, Location: branch.Location}
	}
	return BranchListResponse{Branches: out}
}
