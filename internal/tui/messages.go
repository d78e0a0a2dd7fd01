package tui

import (
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// NavigateTo switches the authentication flow to another page.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginDone carries the outcome of an async login or register command.
type LoginDone struct {
	Session models.Session
	Err     error
}

type conversationsLoadedMsg struct {
	conversations []models.Conversation
}

type usersLoadedMsg struct {
	users []models.User
}

type chatOpenedMsg struct {
	conversationID string
	err            error
}

type threadSnapshotMsg struct {
	snapshot service.ThreadSnapshot
}

type pollTickMsg struct{}

type activityMsg struct {
	count int
}

type sendDoneMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct{}

type clearStatusMsg struct{}
