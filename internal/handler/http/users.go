package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/internal/utils"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.ChatService.ListUsers(ctx, utils.UserIDFromContext(ctx))
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing users")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.ChatService.GetUser(ctx, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.WriteError(w, "User not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during getting user")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
