package wire

import (
	"nightcare/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSymptom(r chi.Router, symptomHandler *adaptor.SymptomHandler) {
	r.Post("/api/symptom-checker", symptomHandler.Check)
}
