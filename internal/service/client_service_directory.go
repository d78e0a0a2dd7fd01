// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
)

type directoryService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu     sync.Mutex
	cursor string
}

// NewDirectoryService returns the chat list service.
func NewDirectoryService(srv adapter.ServerAdapter, logger *logger.Logger) DirectoryService {
	return &directoryService{adapter: srv, logger: logger}
}

// Conversations implements [DirectoryService]. Server order is preserved;
// filtering only drops entries, it never re-sorts.
func (s *directoryService) Conversations(ctx context.Context, filter string) []models.Conversation {
	conversations, err := s.adapter.ListConversations(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "Conversations").Msg("error listing conversations")
		return nil
	}

	if filter = strings.TrimSpace(filter); filter == "" {
		return conversations
	}

	filtered := conversations[:0]
	for _, conversation := range conversations {
		if matchesFilter(conversation.OtherUser.DisplayName, filter) {
			filtered = append(filtered, conversation)
		}
	}

	return filtered
}

// Users implements [DirectoryService].
func (s *directoryService) Users(ctx context.Context, filter string) []models.User {
	users, err := s.adapter.ListUsers(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "Users").Msg("error listing users")
		return nil
	}

	if filter = strings.TrimSpace(filter); filter == "" {
		return users
	}

	filtered := users[:0]
	for _, user := range users {
		if matchesFilter(user.DisplayName, filter) {
			filtered = append(filtered, user)
		}
	}

	return filtered
}

// StartConversation implements [DirectoryService].
func (s *directoryService) StartConversation(ctx context.Context, userID string) (string, error) {
	conversationID, err := s.adapter.StartConversation(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("start conversation: %w", err)
	}

	return conversationID, nil
}

// PollNew implements [DirectoryService]. The first call primes the cursor
// and reports everything already known as new; callers treat the first batch
// as baseline, not as fresh activity.
func (s *directoryService) PollNew(ctx context.Context) []models.PollMessage {
	s.mu.Lock()
	cursor := s.cursor
	s.mu.Unlock()

	messages, err := s.adapter.PollMessages(ctx, cursor)
	if err != nil {
		s.logger.Err(err).Str("func", "PollNew").Msg("error polling messages")
		return nil
	}
	if len(messages) == 0 {
		return nil
	}

	s.mu.Lock()
	s.cursor = messages[len(messages)-1].MessageID
	s.mu.Unlock()

	return messages
}

func matchesFilter(displayName, filter string) bool {
	return strings.Contains(strings.ToLower(displayName), strings.ToLower(filter))
}
