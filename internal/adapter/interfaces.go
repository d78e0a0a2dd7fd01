// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the client uses to talk to
// the messenger server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-messenger/models"
)

// ServerAdapter defines transport-agnostic communication with the messenger
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Register or Login and
	// when a persisted session is restored.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// ClearToken removes the stored bearer token. Subsequent requests are
	// sent unauthenticated. Safe to call when no token is set.
	ClearToken()

	// Register provisions a new account and returns the authenticated
	// session. On success the returned token is stored via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Login authenticates an existing account and returns the session. On
	// success the returned token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// ListUsers fetches the full user directory (everyone but the caller).
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser fetches a single user's profile.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// ListConversations fetches the caller's conversations in server order
	// (most recent activity first).
	ListConversations(ctx context.Context) ([]models.Conversation, error)

	// GetConversation fetches a single conversation by ID. Returns
	// [ErrNotFound] (wrapped) if the caller has no such conversation.
	GetConversation(ctx context.Context, conversationID string) (models.Conversation, error)

	// ListMessages fetches the full message history of a conversation in
	// server (chronological) order.
	ListMessages(ctx context.Context, conversationID string) ([]models.Message, error)

	// SendMessage submits a new outgoing message and returns the stored copy.
	SendMessage(ctx context.Context, conversationID, text string) (models.Message, error)

	// StartConversation resolves or creates the conversation with userID and
	// returns its identifier.
	StartConversation(ctx context.Context, userID string) (string, error)

	// MarkConversationRead marks all of the caller's incoming messages in the
	// conversation as read. Idempotent on the server side.
	MarkConversationRead(ctx context.Context, conversationID string) error

	// PollMessages fetches messages involving the caller that are newer than
	// lastMessageID. An empty cursor returns everything.
	PollMessages(ctx context.Context, lastMessageID string) ([]models.PollMessage, error)
}
