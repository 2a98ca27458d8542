package wire

import (
	"nightcare/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Login-by-phone; no sessions, every route stays public
	r.Post("/api/login", authHandler.Login)
}
