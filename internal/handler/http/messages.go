package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/internal/utils"
	"github.com/MKhiriev/go-chat-messenger/models"
)

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	messages, err := h.services.ChatService.ListMessages(ctx, utils.UserIDFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		h.writeChatError(w, log, err, "unexpected error occurred during listing messages")
		return
	}

	_, _ = utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	message, err := h.services.ChatService.SendMessage(ctx, utils.UserIDFromContext(ctx), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			utils.WriteError(w, "Message text is required", http.StatusBadRequest)
			return
		default:
			h.writeChatError(w, log, err, "unexpected error occurred during sending message")
			return
		}
	}

	_, _ = utils.WriteJSON(w, message, http.StatusCreated)
}

func (h *Handler) pollMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	messages, err := h.services.ChatService.PollMessages(ctx, utils.UserIDFromContext(ctx), r.URL.Query().Get("lastMessageId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCursor):
			utils.WriteError(w, "Unknown cursor message", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during polling messages")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, messages, http.StatusOK)
}
