package wire

import (
	"abc-cinemas/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStatus(r chi.Router, statusHandler *adaptor.StatusHandler) {
	r.Get("/", statusHandler.Root)
	r.Get("/health", statusHandler.Health)
	r.Get("/api/status", statusHandler.Status)
}

func wireBranch(r chi.Router, branchHandler *adaptor.BranchHandler) {
	r.Get("/api/branches", branchHandler.GetBranches)
}
