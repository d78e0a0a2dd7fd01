package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/internal/utils"
	"github.com/MKhiriev/go-chat-messenger/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			log.Err(err).Msg("invalid registration data")
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUsernameTaken):
			log.Err(err).Msg("username already exists")
			utils.WriteError(w, "Username already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			utils.WriteError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("userId", resp.UserID).Msg("user successfully logged in")

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}
