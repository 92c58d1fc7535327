package adaptor

import (
	"net/http"

	"abc-cinemas/internal/usecase"
	"abc-cinemas/pkg/utils"

	"go.uber.org/zap"
)

type BranchHandler struct {
	service usecase.BranchService
	log     *zap.Logger
}

func NewBranchHandler(service usecase.BranchService, log *zap.Logger) *BranchHandler {
	return &BranchHandler{
		service: service,
		log:     log.With(zap.String("handler", "branch")),
	}
}

// GetBranches handles GET /api/branches
func (h *BranchHandler) GetBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.service.GetBranches(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get branches")
		return
	}

	utils.ResponseSuccess(w, "success", branches)
}
