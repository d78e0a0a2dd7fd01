package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-messenger/internal/store"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// In-memory repository fakes backing the server service tests. They mimic
// the ordering and sentinel-error contracts of the SQL repositories.

type fakeUserRepo struct {
	mu       sync.Mutex
	accounts map[string]models.Account
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{accounts: make(map[string]models.Account)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, account models.Account) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Username == account.Username {
			return models.Account{}, store.ErrUsernameAlreadyExists
		}
	}
	r.accounts[account.UserID] = account
	return account, nil
}

func (r *fakeUserRepo) FindUserByUsername(_ context.Context, username string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return models.Account{}, store.ErrNoUserWasFound
}

func (r *fakeUserRepo) GetUser(_ context.Context, userID string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[userID]
	if !ok {
		return models.Account{}, store.ErrNoUserWasFound
	}
	return account, nil
}

func (r *fakeUserRepo) ListUsers(_ context.Context, excludeUserID string) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var accounts []models.Account
	for _, account := range r.accounts {
		if account.UserID != excludeUserID {
			accounts = append(accounts, account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].DisplayName < accounts[j].DisplayName })
	return accounts, nil
}

type fakeConvRepo struct {
	mu      sync.Mutex
	threads map[string]models.ConversationRecord
}

func newFakeConvRepo() *fakeConvRepo {
	return &fakeConvRepo{threads: make(map[string]models.ConversationRecord)}
}

func (r *fakeConvRepo) CreateConversation(_ context.Context, conv models.ConversationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threads[conv.ConversationID] = conv
	return nil
}

func (r *fakeConvRepo) GetConversation(_ context.Context, conversationID string) (models.ConversationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.threads[conversationID]
	if !ok {
		return models.ConversationRecord{}, store.ErrConversationNotFound
	}
	return conv, nil
}

func (r *fakeConvRepo) FindConversationBetween(_ context.Context, userA, userB string) (models.ConversationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conv := range r.threads {
		if conv.HasParticipant(userA) && conv.HasParticipant(userB) {
			return conv, nil
		}
	}
	return models.ConversationRecord{}, store.ErrConversationNotFound
}

func (r *fakeConvRepo) ListConversationsForUser(_ context.Context, userID string) ([]models.ConversationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var threads []models.ConversationRecord
	for _, conv := range r.threads {
		if conv.HasParticipant(userID) {
			threads = append(threads, conv)
		}
	}
	sort.Slice(threads, func(i, j int) bool {
		a, b := threads[i].LastMessageTime, threads[j].LastMessageTime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return threads, nil
}

func (r *fakeConvRepo) UpdateLastMessage(_ context.Context, conversationID, preview string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.threads[conversationID]
	if !ok {
		return store.ErrConversationNotFound
	}
	conv.LastMessage = preview
	conv.LastMessageTime = &at
	r.threads[conversationID] = conv
	return nil
}

type fakeMsgRepo struct {
	mu       sync.Mutex
	messages []models.MessageRecord
}

func newFakeMsgRepo() *fakeMsgRepo {
	return &fakeMsgRepo{}
}

func (r *fakeMsgRepo) CreateMessage(_ context.Context, msg models.MessageRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeMsgRepo) ListMessagesByConversation(_ context.Context, conversationID string) ([]models.MessageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.MessageRecord
	for _, msg := range r.messages {
		if msg.ConversationID == conversationID {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (r *fakeMsgRepo) CountUnread(_ context.Context, conversationID, receiverID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, msg := range r.messages {
		if msg.ConversationID == conversationID && msg.ReceiverID == receiverID && msg.Status != models.StatusRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeMsgRepo) MarkConversationRead(_ context.Context, conversationID, receiverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, msg := range r.messages {
		if msg.ConversationID == conversationID && msg.ReceiverID == receiverID {
			r.messages[i].Status = models.StatusRead
		}
	}
	return nil
}

func (r *fakeMsgRepo) ListMessagesAfter(_ context.Context, userID, afterMessageID string) ([]models.MessageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	after := time.Time{}
	if afterMessageID != "" {
		found := false
		for _, msg := range r.messages {
			if msg.MessageID == afterMessageID {
				after = msg.CreatedAt
				found = true
				break
			}
		}
		if !found {
			return nil, store.ErrMessageNotFound
		}
	}
	var result []models.MessageRecord
	for _, msg := range r.messages {
		involved := msg.SenderID == userID || msg.ReceiverID == userID
		if involved && msg.CreatedAt.After(after) {
			result = append(result, msg)
		}
	}
	return result, nil
}

func newTestStorages() *store.Storages {
	return &store.Storages{
		UserRepository:         newFakeUserRepo(),
		ConversationRepository: newFakeConvRepo(),
		MessageRepository:      newFakeMsgRepo(),
	}
}
