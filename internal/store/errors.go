package store

import "errors"

var (
	// ErrUsernameAlreadyExists is returned when registration hits the unique
	// constraint on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	// ErrNoUserWasFound is returned when a user lookup matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")
	// ErrConversationNotFound is returned when a conversation lookup matches
	// nothing.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrMessageNotFound is returned when a message lookup matches nothing.
	ErrMessageNotFound = errors.New("message not found")
	// ErrLocalSessionNotFound is returned by the client session store when no
	// persisted session exists.
	ErrLocalSessionNotFound = errors.New("local session not found")
)
