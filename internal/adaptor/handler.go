package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"nightcare/internal/usecase"
	"nightcare/pkg/apperrors"
	"nightcare/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Symptom   *SymptomHandler
	Doctor    *DoctorHandler
	Ambulance *AmbulanceHandler
	Blood     *BloodHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Symptom:   NewSymptomHandler(service.Symptom, log),
		Doctor:    NewDoctorHandler(service.Doctor, log),
		Ambulance: NewAmbulanceHandler(service.Ambulance, log),
		Blood:     NewBloodHandler(service.Blood, log),
	}
}

// decodeBody fills the request DTO from the body. Empty or malformed JSON
// degrades to the zero-valued DTO instead of failing the request, so every
// 400 comes from missing-field validation, never from parsing.
func decodeBody[T any](r *http.Request) *T {
	var req T
	if r.Body == nil {
		return &req
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var zero T
		return &zero
	}
	return &req
}

// handleServiceError maps the error taxonomy onto HTTP statuses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *apperrors.ValidationError
	var storeErr *apperrors.StoreError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		if validationErr.Hint != "" {
			utils.ResponseBadRequestWithHint(w, validationErr.Message, validationErr.Hint)
			return
		}
		utils.ResponseBadRequest(w, validationErr.Message)

	case errors.Is(err, apperrors.ErrStoreInvariant):
		log.Error(operation+" hit a storage invariant violation", zap.Error(err))
		utils.ResponseInternalError(w, "could not create user")

	case errors.As(err, &storeErr):
		log.Error(operation+" failed - storage unavailable", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
