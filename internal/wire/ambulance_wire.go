package wire

import (
	"nightcare/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAmbulance(r chi.Router, ambulanceHandler *adaptor.AmbulanceHandler) {
	r.Post("/api/ambulance/book", ambulanceHandler.Book)
}
