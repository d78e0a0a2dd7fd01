package service

import (
	"context"

	"github.com/MKhiriev/go-chat-messenger/models"
)

// SessionService manages the client's authenticated session: obtaining one
// from the server, persisting it locally, restoring it on startup and
// discarding it on logout.
type SessionService interface {
	// Register creates an account, stores the resulting session and arms the
	// adapter with its token. On failure the current session is unchanged.
	Register(ctx context.Context, username, password, displayName string) (models.Session, error)
	// Login authenticates, stores the resulting session and arms the adapter
	// with its token. On failure the current session is unchanged.
	Login(ctx context.Context, username, password string) (models.Session, error)
	// Restore loads the persisted session and arms the adapter. Returns
	// [store.ErrLocalSessionNotFound] (wrapped) when no session is persisted.
	Restore(ctx context.Context) (models.Session, error)
	// Logout clears the persisted session and the adapter token. Idempotent:
	// logging out without a session is not an error.
	Logout(ctx context.Context) error
	// Current returns the in-memory session, which may be unauthenticated.
	Current() models.Session
}

// DirectoryService serves the chat list screen: conversations, the user
// directory and the activity cursor that tells the screen when to refresh.
type DirectoryService interface {
	// Conversations returns the caller's threads in server order, optionally
	// narrowed by a case-insensitive display-name filter. Transport failures
	// are logged and surface as an empty list so the screen keeps rendering.
	Conversations(ctx context.Context, filter string) []models.Conversation
	// Users returns the user directory, optionally narrowed by a
	// case-insensitive display-name filter. Same failure policy as
	// Conversations.
	Users(ctx context.Context, filter string) []models.User
	// StartConversation resolves or creates the thread with userID and
	// returns its identifier.
	StartConversation(ctx context.Context, userID string) (string, error)
	// PollNew returns messages that arrived since the previous call and
	// advances the internal cursor. Failures are logged and return nil.
	PollNew(ctx context.Context) []models.PollMessage
}

// ThreadService serves an open conversation view.
type ThreadService interface {
	// Sync runs one synchronisation cycle: fetch the thread's messages,
	// resolve the counterpart, and mark incoming messages read. Marking read
	// happens every cycle because an open thread means the user has seen
	// everything in it.
	Sync(ctx context.Context, conversationID string) (ThreadSnapshot, error)
	// Send submits a message. Text that is empty after trimming is dropped
	// without a request. Transport failures are logged and returned.
	Send(ctx context.Context, conversationID, text string) error
}
