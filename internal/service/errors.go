package service

import "errors"

var (
	// ErrUsernameTaken is returned when registering a username that exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned when login fails. Unknown username and
	// wrong password map to the same error on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when a profile lookup matches nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrConversationNotFound is returned when a thread lookup matches
	// nothing.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrUnknownCursor is returned when a poll request names a cursor message
	// that does not exist.
	ErrUnknownCursor = errors.New("unknown cursor message")
	// ErrAccessDenied is returned when the caller is not a participant of the
	// thread they are trying to read or write.
	ErrAccessDenied = errors.New("access denied")
	// ErrEmptyMessage is returned when a send carries no text after trimming.
	ErrEmptyMessage = errors.New("message text is empty")
	// ErrSelfConversation is returned when a user tries to start a thread with
	// themselves.
	ErrSelfConversation = errors.New("cannot start a conversation with yourself")
	// ErrValidation is returned when a register request is missing required
	// fields.
	ErrValidation = errors.New("username, password and display name are required")
)
