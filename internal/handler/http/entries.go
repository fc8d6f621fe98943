package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mlevansky/go-cred-vault/internal/logger"
	"github.com/mlevansky/go-cred-vault/internal/service"
	"github.com/mlevansky/go-cred-vault/internal/store"
	"github.com/mlevansky/go-cred-vault/internal/utils"
	"github.com/mlevansky/go-cred-vault/models"
)

// entryRequest is the body accepted when creating an entry.
type entryRequest struct {
	Title             string `json:"title"`
	Username          string `json:"username"`
	EncryptedPassword string `json:"encrypted_password"`
	IV                string `json:"iv"`
	URL               string `json:"url"`
	Notes             string `json:"notes"`
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated handler reached without user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entries, err := h.services.EntryService.ListEntries(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("listing entries failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []models.Entry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated handler reached without user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	entry := models.Entry{
		UserID:            user.UserID,
		Title:             req.Title,
		Username:          req.Username,
		EncryptedPassword: req.EncryptedPassword,
		IV:                req.IV,
		URL:               req.URL,
		Notes:             req.Notes,
	}

	created, err := h.services.EntryService.CreateEntry(ctx, entry)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("entry creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated handler reached without user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid entry id")
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	var update models.EntryUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.EntryService.UpdateEntry(ctx, entryID, user.UserID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnpairedCipherUpdate):
			log.Err(err).Msg("unpaired cipher update rejected")
			http.Error(w, service.ErrUnpairedCipherUpdate.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEntryNotFound):
			log.Err(err).Int64("entry", entryID).Msg("entry not found")
			http.Error(w, "Password not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("entry update failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated handler reached without user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid entry id")
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	if err := h.services.EntryService.DeleteEntry(ctx, entryID, user.UserID); err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			log.Err(err).Int64("entry", entryID).Msg("entry not found")
			http.Error(w, "Password not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("entry deletion failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Password deleted successfully"}, http.StatusOK)
}

// entryIDFromURL parses the {id} URL parameter.
func entryIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
