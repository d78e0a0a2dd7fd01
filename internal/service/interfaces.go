package service

import (
	"context"

	"github.com/MKhiriev/go-chat-messenger/models"
)

// AuthService handles account registration, login and token verification.
type AuthService interface {
	// Register creates an account and returns an auth response with a fresh
	// token. Returns [ErrValidation] on missing fields and [ErrUsernameTaken]
	// on a duplicate username.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	// Login verifies credentials and returns an auth response with a fresh
	// token. Returns [ErrInvalidCredentials] on any mismatch.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	// VerifyToken validates a bearer token and returns the user ID it was
	// issued to. Refreshing presence is a side effect: a user with a valid
	// token making requests is online.
	VerifyToken(ctx context.Context, tokenString string) (string, error)
}

// ChatService handles the authenticated messenger operations.
type ChatService interface {
	// ListUsers returns every profile except the caller's, decorated with
	// presence.
	ListUsers(ctx context.Context, callerID string) ([]models.User, error)
	// GetUser returns a single profile decorated with presence.
	GetUser(ctx context.Context, userID string) (models.User, error)
	// ListConversations returns the caller's threads, most recent first, each
	// with the counterpart profile, last message preview and unread count.
	ListConversations(ctx context.Context, callerID string) ([]models.Conversation, error)
	// GetConversation returns a single thread view for the caller. Returns
	// [ErrAccessDenied] if the caller is not a participant.
	GetConversation(ctx context.Context, callerID, conversationID string) (models.Conversation, error)
	// StartConversation finds or creates the thread between the caller and
	// otherUserID.
	StartConversation(ctx context.Context, callerID, otherUserID string) (models.StartConversationResponse, error)
	// ListMessages returns the thread's messages in chronological order.
	// Returns [ErrAccessDenied] if the caller is not a participant.
	ListMessages(ctx context.Context, callerID, conversationID string) ([]models.Message, error)
	// SendMessage appends a message to the thread and refreshes its preview.
	SendMessage(ctx context.Context, callerID, conversationID, text string) (models.Message, error)
	// MarkConversationRead promotes the caller's unread messages in the
	// thread to read.
	MarkConversationRead(ctx context.Context, callerID, conversationID string) error
	// PollMessages returns the caller's messages created after the cursor
	// message, oldest first. An empty cursor returns everything.
	PollMessages(ctx context.Context, callerID, afterMessageID string) ([]models.PollMessage, error)
}
