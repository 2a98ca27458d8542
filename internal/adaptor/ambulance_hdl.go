package adaptor

import (
	"net/http"

	"nightcare/internal/dto/request"
	"nightcare/internal/usecase"
	"nightcare/pkg/utils"

	"go.uber.org/zap"
)

type AmbulanceHandler struct {
	service usecase.AmbulanceService
	log     *zap.Logger
}

func NewAmbulanceHandler(service usecase.AmbulanceService, log *zap.Logger) *AmbulanceHandler {
	return &AmbulanceHandler{
		service: service,
		log:     log,
	}
}

// Book handles POST /api/ambulance/book
func (h *AmbulanceHandler) Book(w http.ResponseWriter, r *http.Request) {
	req := decodeBody[request.BookAmbulanceRequest](r)

	resp, err := h.service.Book(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "book ambulance")
		return
	}

	utils.ResponseSuccess(w, resp)
}
