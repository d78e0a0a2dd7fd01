package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-messenger/models"
)

// UserRepository is the data-access layer for user accounts.
type UserRepository interface {
	// CreateUser persists a new account. Returns [ErrUsernameAlreadyExists]
	// if the username is taken.
	CreateUser(ctx context.Context, account models.Account) (models.Account, error)
	// FindUserByUsername looks an account up by its login name. Returns
	// [ErrNoUserWasFound] when absent.
	FindUserByUsername(ctx context.Context, username string) (models.Account, error)
	// GetUser looks an account up by ID. Returns [ErrNoUserWasFound] when
	// absent.
	GetUser(ctx context.Context, userID string) (models.Account, error)
	// ListUsers returns every account except excludeUserID, ordered by
	// display name.
	ListUsers(ctx context.Context, excludeUserID string) ([]models.Account, error)
}

// ConversationRepository is the data-access layer for two-party threads.
type ConversationRepository interface {
	// CreateConversation persists a new thread between two participants.
	CreateConversation(ctx context.Context, conv models.ConversationRecord) error
	// GetConversation looks a thread up by ID. Returns
	// [ErrConversationNotFound] when absent.
	GetConversation(ctx context.Context, conversationID string) (models.ConversationRecord, error)
	// FindConversationBetween returns the thread joining the two users in
	// either participant order. Returns [ErrConversationNotFound] when the
	// users have never talked.
	FindConversationBetween(ctx context.Context, userA, userB string) (models.ConversationRecord, error)
	// ListConversationsForUser returns the user's threads ordered by most
	// recent activity first; threads without messages sort last.
	ListConversationsForUser(ctx context.Context, userID string) ([]models.ConversationRecord, error)
	// UpdateLastMessage refreshes the thread's preview text and activity
	// timestamp after a send.
	UpdateLastMessage(ctx context.Context, conversationID, preview string, at time.Time) error
}

// MessageRepository is the data-access layer for chat messages.
type MessageRepository interface {
	// CreateMessage persists a new message.
	CreateMessage(ctx context.Context, msg models.MessageRecord) error
	// ListMessagesByConversation returns the thread's messages in
	// chronological order.
	ListMessagesByConversation(ctx context.Context, conversationID string) ([]models.MessageRecord, error)
	// CountUnread returns how many of receiverID's messages in the thread
	// are not yet read.
	CountUnread(ctx context.Context, conversationID, receiverID string) (int, error)
	// MarkConversationRead promotes all of receiverID's unread messages in
	// the thread to read. Idempotent.
	MarkConversationRead(ctx context.Context, conversationID, receiverID string) error
	// ListMessagesAfter returns messages involving userID created after the
	// message identified by afterMessageID, chronologically. An empty cursor
	// returns all of the user's messages.
	ListMessagesAfter(ctx context.Context, userID, afterMessageID string) ([]models.MessageRecord, error)
}
