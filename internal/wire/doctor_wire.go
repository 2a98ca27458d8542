package wire

import (
	"nightcare/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDoctor(r chi.Router, doctorHandler *adaptor.DoctorHandler) {
	r.Get("/api/doctors", doctorHandler.List)
}
