// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/presence"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
	"github.com/MKhiriev/go-chat-messenger/models"
)

type chatService struct {
	users         store.UserRepository
	conversations store.ConversationRepository
	messages      store.MessageRepository
	presence      presence.Tracker
	logger        *logger.Logger
}

// NewChatService returns the service behind the authenticated messenger
// endpoints.
func NewChatService(storages *store.Storages, tracker presence.Tracker, logger *logger.Logger) ChatService {
	return &chatService{
		users:         storages.UserRepository,
		conversations: storages.ConversationRepository,
		messages:      storages.MessageRepository,
		presence:      tracker,
		logger:        logger,
	}
}

// ListUsers implements [ChatService].
func (s *chatService) ListUsers(ctx context.Context, callerID string) ([]models.User, error) {
	accounts, err := s.users.ListUsers(ctx, callerID)
	if err != nil {
		s.logger.Err(err).Str("func", "ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("error listing users")
	}

	profiles := make([]models.User, 0, len(accounts))
	for _, account := range accounts {
		profiles = append(profiles, s.decoratePresence(ctx, account.Profile()))
	}

	return profiles, nil
}

// GetUser implements [ChatService].
func (s *chatService) GetUser(ctx context.Context, userID string) (models.User, error) {
	account, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		s.logger.Err(err).Str("func", "GetUser").Msg("error getting user")
		return models.User{}, fmt.Errorf("error getting user")
	}

	return s.decoratePresence(ctx, account.Profile()), nil
}

// ListConversations implements [ChatService]. Ordering comes from the
// repository: most recent activity first, empty threads last.
func (s *chatService) ListConversations(ctx context.Context, callerID string) ([]models.Conversation, error) {
	records, err := s.conversations.ListConversationsForUser(ctx, callerID)
	if err != nil {
		s.logger.Err(err).Str("func", "ListConversations").Msg("error listing conversations")
		return nil, fmt.Errorf("error listing conversations")
	}

	conversations := make([]models.Conversation, 0, len(records))
	for _, record := range records {
		conversation, err := s.buildConversationView(ctx, callerID, record)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conversation)
	}

	return conversations, nil
}

// GetConversation implements [ChatService].
func (s *chatService) GetConversation(ctx context.Context, callerID, conversationID string) (models.Conversation, error) {
	record, err := s.authorizedConversation(ctx, callerID, conversationID)
	if err != nil {
		return models.Conversation{}, err
	}

	return s.buildConversationView(ctx, callerID, record)
}

// StartConversation implements [ChatService]. Finding an existing thread and
// creating a new one return the same response shape, so clients need not
// care which happened.
func (s *chatService) StartConversation(ctx context.Context, callerID, otherUserID string) (models.StartConversationResponse, error) {
	if callerID == otherUserID {
		return models.StartConversationResponse{}, ErrSelfConversation
	}

	if _, err := s.users.GetUser(ctx, otherUserID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.StartConversationResponse{}, ErrUserNotFound
		}
		s.logger.Err(err).Str("func", "StartConversation").Msg("error getting user")
		return models.StartConversationResponse{}, fmt.Errorf("error getting user")
	}

	existing, err := s.conversations.FindConversationBetween(ctx, callerID, otherUserID)
	if err == nil {
		return models.StartConversationResponse{ConversationID: existing.ConversationID}, nil
	}
	if !errors.Is(err, store.ErrConversationNotFound) {
		s.logger.Err(err).Str("func", "StartConversation").Msg("error finding conversation")
		return models.StartConversationResponse{}, fmt.Errorf("error finding conversation")
	}

	record := models.ConversationRecord{
		ConversationID: uuid.NewString(),
		ParticipantA:   callerID,
		ParticipantB:   otherUserID,
		CreatedAt:      timeNow(),
	}
	if err = s.conversations.CreateConversation(ctx, record); err != nil {
		s.logger.Err(err).Str("func", "StartConversation").Msg("error creating conversation")
		return models.StartConversationResponse{}, fmt.Errorf("error creating conversation")
	}

	return models.StartConversationResponse{ConversationID: record.ConversationID}, nil
}

// ListMessages implements [ChatService].
func (s *chatService) ListMessages(ctx context.Context, callerID, conversationID string) ([]models.Message, error) {
	if _, err := s.authorizedConversation(ctx, callerID, conversationID); err != nil {
		return nil, err
	}

	records, err := s.messages.ListMessagesByConversation(ctx, conversationID)
	if err != nil {
		s.logger.Err(err).Str("func", "ListMessages").Msg("error listing messages")
		return nil, fmt.Errorf("error listing messages")
	}

	messages := make([]models.Message, 0, len(records))
	for _, record := range records {
		messages = append(messages, models.Message{
			MessageID: record.MessageID,
			Text:      record.Text,
			SenderID:  record.SenderID,
			Timestamp: formatMessageTime(record.CreatedAt),
			Status:    record.Status,
		})
	}

	return messages, nil
}

// SendMessage implements [ChatService]. A successful send also refreshes the
// thread's preview and activity timestamp, which drives conversation list
// ordering.
func (s *chatService) SendMessage(ctx context.Context, callerID, conversationID, text string) (models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, ErrEmptyMessage
	}

	record, err := s.authorizedConversation(ctx, callerID, conversationID)
	if err != nil {
		return models.Message{}, err
	}
	receiverID, _ := record.OtherParticipant(callerID)

	message := models.MessageRecord{
		MessageID:      uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       callerID,
		ReceiverID:     receiverID,
		Text:           text,
		Status:         models.StatusSent,
		CreatedAt:      timeNow(),
	}
	if err = s.messages.CreateMessage(ctx, message); err != nil {
		s.logger.Err(err).Str("func", "SendMessage").Msg("error creating message")
		return models.Message{}, fmt.Errorf("error creating message")
	}

	if err = s.conversations.UpdateLastMessage(ctx, conversationID, text, message.CreatedAt); err != nil {
		s.logger.Err(err).Str("func", "SendMessage").Msg("error updating conversation preview")
		return models.Message{}, fmt.Errorf("error updating conversation preview")
	}

	return models.Message{
		MessageID: message.MessageID,
		Text:      message.Text,
		SenderID:  message.SenderID,
		Timestamp: formatMessageTime(message.CreatedAt),
		Status:    message.Status,
	}, nil
}

// MarkConversationRead implements [ChatService].
func (s *chatService) MarkConversationRead(ctx context.Context, callerID, conversationID string) error {
	if _, err := s.authorizedConversation(ctx, callerID, conversationID); err != nil {
		return err
	}

	if err := s.messages.MarkConversationRead(ctx, conversationID, callerID); err != nil {
		s.logger.Err(err).Str("func", "MarkConversationRead").Msg("error marking conversation read")
		return fmt.Errorf("error marking conversation read")
	}

	return nil
}

// PollMessages implements [ChatService].
func (s *chatService) PollMessages(ctx context.Context, callerID, afterMessageID string) ([]models.PollMessage, error) {
	records, err := s.messages.ListMessagesAfter(ctx, callerID, afterMessageID)
	if err != nil {
		if errors.Is(err, store.ErrMessageNotFound) {
			return nil, ErrUnknownCursor
		}
		s.logger.Err(err).Str("func", "PollMessages").Msg("error polling messages")
		return nil, fmt.Errorf("error polling messages")
	}

	messages := make([]models.PollMessage, 0, len(records))
	for _, record := range records {
		messages = append(messages, models.PollMessage{
			MessageID:      record.MessageID,
			ConversationID: record.ConversationID,
			Text:           record.Text,
			SenderID:       record.SenderID,
			Timestamp:      formatMessageTime(record.CreatedAt),
		})
	}

	return messages, nil
}

// authorizedConversation loads a thread and checks the caller belongs to it.
func (s *chatService) authorizedConversation(ctx context.Context, callerID, conversationID string) (models.ConversationRecord, error) {
	record, err := s.conversations.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrConversationNotFound) {
			return models.ConversationRecord{}, ErrConversationNotFound
		}
		s.logger.Err(err).Str("func", "authorizedConversation").Msg("error getting conversation")
		return models.ConversationRecord{}, fmt.Errorf("error getting conversation")
	}
	if !record.HasParticipant(callerID) {
		return models.ConversationRecord{}, ErrAccessDenied
	}

	return record, nil
}

// buildConversationView assembles the caller's view of a thread: counterpart
// profile with presence, preview, display timestamp and unread counter.
func (s *chatService) buildConversationView(ctx context.Context, callerID string, record models.ConversationRecord) (models.Conversation, error) {
	otherID, ok := record.OtherParticipant(callerID)
	if !ok {
		return models.Conversation{}, ErrAccessDenied
	}

	other, err := s.users.GetUser(ctx, otherID)
	if err != nil {
		s.logger.Err(err).Str("func", "buildConversationView").Msg("error getting counterpart")
		return models.Conversation{}, fmt.Errorf("error getting counterpart")
	}

	unread, err := s.messages.CountUnread(ctx, record.ConversationID, callerID)
	if err != nil {
		s.logger.Err(err).Str("func", "buildConversationView").Msg("error counting unread")
		return models.Conversation{}, fmt.Errorf("error counting unread")
	}

	timestamp := ""
	if record.LastMessageTime != nil {
		timestamp = formatActivityTime(*record.LastMessageTime)
	}

	return models.Conversation{
		ConversationID: record.ConversationID,
		OtherUser:      s.decoratePresence(ctx, other.Profile()),
		LastMessage:    record.LastMessage,
		Timestamp:      timestamp,
		UnreadCount:    unread,
	}, nil
}

// decoratePresence fills in the live Online flag. Presence failures degrade
// to offline rather than failing the request.
func (s *chatService) decoratePresence(ctx context.Context, profile models.User) models.User {
	online, err := s.presence.IsOnline(ctx, profile.UserID)
	if err != nil {
		s.logger.Err(err).Str("func", "decoratePresence").Msg("error checking presence")
		return profile
	}
	profile.Online = online

	return profile
}
