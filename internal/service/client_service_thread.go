// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// ThreadSnapshot is one consistent view of an open conversation: the
// counterpart's profile and the full message history at the moment of the
// sync cycle. Snapshots replace each other wholesale; the UI never merges
// two of them.
type ThreadSnapshot struct {
	ConversationID string
	OtherUser      models.User
	Messages       []models.Message
}

type threadService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewThreadService returns the open-conversation service.
func NewThreadService(srv adapter.ServerAdapter, logger *logger.Logger) ThreadService {
	return &threadService{adapter: srv, logger: logger}
}

// Sync implements [ThreadService]. The cycle is ordered: messages first,
// then the counterpart lookup, then mark-read. Mark-read runs even when the
// history is empty, so messages arriving between cycles are never left
// unread while the thread is on screen.
func (s *threadService) Sync(ctx context.Context, conversationID string) (ThreadSnapshot, error) {
	messages, err := s.adapter.ListMessages(ctx, conversationID)
	if err != nil {
		return ThreadSnapshot{}, fmt.Errorf("sync messages: %w", err)
	}

	conversation, err := s.adapter.GetConversation(ctx, conversationID)
	if err != nil {
		return ThreadSnapshot{}, fmt.Errorf("sync conversation: %w", err)
	}

	if err = s.adapter.MarkConversationRead(ctx, conversationID); err != nil {
		// Non-fatal: the next cycle marks read again.
		s.logger.Err(err).Str("func", "Sync").Msg("error marking conversation read")
	}

	return ThreadSnapshot{
		ConversationID: conversationID,
		OtherUser:      conversation.OtherUser,
		Messages:       messages,
	}, nil
}

// Send implements [ThreadService].
func (s *threadService) Send(ctx context.Context, conversationID, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if _, err := s.adapter.SendMessage(ctx, conversationID, text); err != nil {
		s.logger.Err(err).Str("func", "Send").Msg("error sending message")
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
