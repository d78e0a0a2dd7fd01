package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/internal/utils"
)

func (h *Handler) listConversations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	conversations, err := h.services.ChatService.ListConversations(ctx, utils.UserIDFromContext(ctx))
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing conversations")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, conversations, http.StatusOK)
}

func (h *Handler) getConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	conversation, err := h.services.ChatService.GetConversation(ctx, utils.UserIDFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		h.writeChatError(w, log, err, "unexpected error occurred during getting conversation")
		return
	}

	_, _ = utils.WriteJSON(w, conversation, http.StatusOK)
}

func (h *Handler) startConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resp, err := h.services.ChatService.StartConversation(ctx, utils.UserIDFromContext(ctx), chi.URLParam(r, "userId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.WriteError(w, "User not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrSelfConversation):
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during starting conversation")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) markConversationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	err := h.services.ChatService.MarkConversationRead(ctx, utils.UserIDFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		h.writeChatError(w, log, err, "unexpected error occurred during marking conversation read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeChatError maps the shared conversation-access errors to their HTTP
// responses.
func (h *Handler) writeChatError(w http.ResponseWriter, log *logger.Logger, err error, unexpectedMsg string) {
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		utils.WriteError(w, "Conversation not found", http.StatusNotFound)
	case errors.Is(err, service.ErrAccessDenied):
		utils.WriteError(w, "Access denied", http.StatusForbidden)
	default:
		log.Err(err).Msg(unexpectedMsg)
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
