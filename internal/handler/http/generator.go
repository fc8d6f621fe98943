package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mlevansky/go-cred-vault/internal/logger"
	"github.com/mlevansky/go-cred-vault/internal/service"
	"github.com/mlevansky/go-cred-vault/internal/utils"
	"github.com/mlevansky/go-cred-vault/models"
)

// generatePassword produces a random password. The endpoint is public: it
// handles no stored data and issues no credentials.
//
// Fields absent from the request body keep their defaults, so an empty body
// yields a 16-character password drawn from all four classes.
func (h *Handler) generatePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	settings := models.DefaultGeneratorSettings()
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	password, err := h.services.GeneratorService.Generate(settings)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPasswordLength),
			errors.Is(err, service.ErrNoCharactersSelected):
			log.Err(err).Msg("generator settings rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("password generation failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.GeneratedPasswordResponse{Password: password}, http.StatusOK)
}

// root is the liveness endpoint.
func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Password Manager API"}, http.StatusOK)
}
