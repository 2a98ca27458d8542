package adaptor

import (
	"net/http"

	"nightcare/internal/dto/request"
	"nightcare/internal/usecase"
	"nightcare/pkg/utils"

	"go.uber.org/zap"
)

type BloodHandler struct {
	service usecase.BloodService
	log     *zap.Logger
}

func NewBloodHandler(service usecase.BloodService, log *zap.Logger) *BloodHandler {
	return &BloodHandler{
		service: service,
		log:     log,
	}
}

// Check handles POST /api/blood/check
func (h *BloodHandler) Check(w http.ResponseWriter, r *http.Request) {
	req := decodeBody[request.BloodCheckRequest](r)

	resp, err := h.service.Check(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "blood check")
		return
	}

	utils.ResponseSuccess(w, resp)
}
