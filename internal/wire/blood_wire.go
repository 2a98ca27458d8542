package wire

import (
	"nightcare/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBlood(r chi.Router, bloodHandler *adaptor.BloodHandler) {
	r.Post("/api/blood/check", bloodHandler.Check)
}
