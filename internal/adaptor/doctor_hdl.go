package adaptor

import (
	"net/http"

	"nightcare/internal/usecase"
	"nightcare/pkg/utils"

	"go.uber.org/zap"
)

type DoctorHandler struct {
	service usecase.DoctorService
	log     *zap.Logger
}

func NewDoctorHandler(service usecase.DoctorService, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/doctors
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list doctors")
		return
	}

	utils.ResponseSuccess(w, resp)
}
