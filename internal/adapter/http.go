// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ClearToken implements [ServerAdapter].
func (h *httpServerAdapter) ClearToken() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/auth/register and stores the returned token via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.Session{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	h.SetToken(auth.Token)
	return models.Session{UserID: auth.UserID, DisplayName: auth.DisplayName, Token: auth.Token}, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the returned token via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	h.SetToken(auth.Token)
	return models.Session{UserID: auth.UserID, DisplayName: auth.DisplayName, Token: auth.Token}, nil
}

// ListUsers implements [ServerAdapter] via GET /api/users.
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser implements [ServerAdapter] via GET /api/users/{id}.
func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/users/" + url.PathEscape(userID))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListConversations implements [ServerAdapter] via GET /api/conversations.
func (h *httpServerAdapter) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	var conversations []models.Conversation

	resp, err := h.authedRequest(ctx).
		SetResult(&conversations).
		Get("/api/conversations")
	if err != nil {
		return nil, fmt.Errorf("list conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return conversations, nil
}

// GetConversation implements [ServerAdapter] via GET /api/conversations/{id}.
func (h *httpServerAdapter) GetConversation(ctx context.Context, conversationID string) (models.Conversation, error) {
	var conversation models.Conversation

	resp, err := h.authedRequest(ctx).
		SetResult(&conversation).
		Get("/api/conversations/" + url.PathEscape(conversationID))
	if err != nil {
		return models.Conversation{}, fmt.Errorf("get conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Conversation{}, err
	}

	return conversation, nil
}

// ListMessages implements [ServerAdapter] via
// GET /api/conversations/{id}/messages.
func (h *httpServerAdapter) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	var messages []models.Message

	resp, err := h.authedRequest(ctx).
		SetResult(&messages).
		Get("/api/conversations/" + url.PathEscape(conversationID) + "/messages")
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messages, nil
}

// SendMessage implements [ServerAdapter] via
// POST /api/conversations/{id}/messages.
func (h *httpServerAdapter) SendMessage(ctx context.Context, conversationID, text string) (models.Message, error) {
	var message models.Message

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SendMessageRequest{Text: text}).
		SetResult(&message).
		Post("/api/conversations/" + url.PathEscape(conversationID) + "/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return message, nil
}

// StartConversation implements [ServerAdapter] via
// POST /api/conversations/start/{userId}.
func (h *httpServerAdapter) StartConversation(ctx context.Context, userID string) (string, error) {
	var started models.StartConversationResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&started).
		Post("/api/conversations/start/" + url.PathEscape(userID))
	if err != nil {
		return "", fmt.Errorf("start conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return started.ConversationID, nil
}

// MarkConversationRead implements [ServerAdapter] via
// PUT /api/conversations/{id}/read.
func (h *httpServerAdapter) MarkConversationRead(ctx context.Context, conversationID string) error {
	resp, err := h.authedRequest(ctx).
		Put("/api/conversations/" + url.PathEscape(conversationID) + "/read")
	if err != nil {
		return fmt.Errorf("mark read request: %w", err)
	}

	return mapHTTPError(resp)
}

// PollMessages implements [ServerAdapter] via GET /api/messages/poll.
func (h *httpServerAdapter) PollMessages(ctx context.Context, lastMessageID string) ([]models.PollMessage, error) {
	var messages []models.PollMessage

	req := h.authedRequest(ctx).SetResult(&messages)
	if lastMessageID != "" {
		req.SetQueryParam("lastMessageId", lastMessageID)
	}

	resp, err := req.Get("/api/messages/poll")
	if err != nil {
		return nil, fmt.Errorf("poll messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messages, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
