package adaptor

import (
	"net/http"

	"nightcare/internal/dto/request"
	"nightcare/internal/usecase"
	"nightcare/pkg/utils"

	"go.uber.org/zap"
)

type SymptomHandler struct {
	service usecase.SymptomService
	log     *zap.Logger
}

func NewSymptomHandler(service usecase.SymptomService, log *zap.Logger) *SymptomHandler {
	return &SymptomHandler{
		service: service,
		log:     log,
	}
}

// Check handles POST /api/symptom-checker
func (h *SymptomHandler) Check(w http.ResponseWriter, r *http.Request) {
	req := decodeBody[request.SymptomCheckRequest](r)

	resp, err := h.service.Check(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "symptom check")
		return
	}

	utils.ResponseSuccess(w, resp)
}
