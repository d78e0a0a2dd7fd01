package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-chat-messenger/internal/store"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// spyAdapter is a hand-rolled ServerAdapter test double. Behaviour is set
// per-test through the function fields; calls are recorded in order so tests
// can assert on the exact request sequence.
type spyAdapter struct {
	mu    sync.Mutex
	calls []string
	token string

	registerFn          func(req models.RegisterRequest) (models.Session, error)
	loginFn             func(req models.LoginRequest) (models.Session, error)
	listUsersFn         func() ([]models.User, error)
	getUserFn           func(userID string) (models.User, error)
	listConversationsFn func() ([]models.Conversation, error)
	getConversationFn   func(conversationID string) (models.Conversation, error)
	listMessagesFn      func(conversationID string) ([]models.Message, error)
	sendMessageFn       func(conversationID, text string) (models.Message, error)
	startFn             func(userID string) (string, error)
	markReadFn          func(conversationID string) error
	pollFn              func(lastMessageID string) ([]models.PollMessage, error)
}

func (a *spyAdapter) record(call string) {
	a.mu.Lock()
	a.calls = append(a.calls, call)
	a.mu.Unlock()
}

func (a *spyAdapter) recorded() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.calls...)
}

func (a *spyAdapter) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
}

func (a *spyAdapter) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

func (a *spyAdapter) ClearToken() {
	a.SetToken("")
}

func (a *spyAdapter) Register(_ context.Context, req models.RegisterRequest) (models.Session, error) {
	a.record("Register")
	return a.registerFn(req)
}

func (a *spyAdapter) Login(_ context.Context, req models.LoginRequest) (models.Session, error) {
	a.record("Login")
	return a.loginFn(req)
}

func (a *spyAdapter) ListUsers(_ context.Context) ([]models.User, error) {
	a.record("ListUsers")
	return a.listUsersFn()
}

func (a *spyAdapter) GetUser(_ context.Context, userID string) (models.User, error) {
	a.record("GetUser")
	return a.getUserFn(userID)
}

func (a *spyAdapter) ListConversations(_ context.Context) ([]models.Conversation, error) {
	a.record("ListConversations")
	return a.listConversationsFn()
}

func (a *spyAdapter) GetConversation(_ context.Context, conversationID string) (models.Conversation, error) {
	a.record("GetConversation")
	return a.getConversationFn(conversationID)
}

func (a *spyAdapter) ListMessages(_ context.Context, conversationID string) ([]models.Message, error) {
	a.record("ListMessages")
	return a.listMessagesFn(conversationID)
}

func (a *spyAdapter) SendMessage(_ context.Context, conversationID, text string) (models.Message, error) {
	a.record("SendMessage")
	return a.sendMessageFn(conversationID, text)
}

func (a *spyAdapter) StartConversation(_ context.Context, userID string) (string, error) {
	a.record("StartConversation")
	return a.startFn(userID)
}

func (a *spyAdapter) MarkConversationRead(_ context.Context, conversationID string) error {
	a.record("MarkConversationRead")
	return a.markReadFn(conversationID)
}

func (a *spyAdapter) PollMessages(_ context.Context, lastMessageID string) ([]models.PollMessage, error) {
	a.record("PollMessages")
	return a.pollFn(lastMessageID)
}

// memorySessionStore is an in-memory SessionStore test double.
type memorySessionStore struct {
	mu      sync.Mutex
	session *models.Session
	saveErr error
}

func (m *memorySessionStore) SaveSession(_ context.Context, session models.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	m.session = &session
	m.mu.Unlock()
	return nil
}

func (m *memorySessionStore) LoadSession(_ context.Context) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return models.Session{}, store.ErrLocalSessionNotFound
	}
	return *m.session, nil
}

func (m *memorySessionStore) ClearSession(_ context.Context) error {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()
	return nil
}
