package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
)

func TestThreadService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("full cycle in order", func(t *testing.T) {
		srv := &spyAdapter{
			listMessagesFn: func(conversationID string) ([]models.Message, error) {
				require.Equal(t, "c1", conversationID)
				return []models.Message{
					{MessageID: "m1", Text: "hello", SenderID: "u1", Timestamp: "10:00", Status: models.StatusRead},
					{MessageID: "m2", Text: "hi there", SenderID: "u2", Timestamp: "10:01", Status: models.StatusSent},
				}, nil
			},
			getConversationFn: func(conversationID string) (models.Conversation, error) {
				require.Equal(t, "c1", conversationID)
				return models.Conversation{
					ConversationID: "c1",
					OtherUser:      models.User{UserID: "u2", DisplayName: "Bob", Online: true},
				}, nil
			},
			markReadFn: func(conversationID string) error {
				require.Equal(t, "c1", conversationID)
				return nil
			},
		}
		svc := NewThreadService(srv, logger.Nop())

		snapshot, err := svc.Sync(ctx, "c1")
		require.NoError(t, err)

		assert.Equal(t, "c1", snapshot.ConversationID)
		assert.Equal(t, "Bob", snapshot.OtherUser.DisplayName)
		require.Len(t, snapshot.Messages, 2)
		assert.Equal(t, "hello", snapshot.Messages[0].Text)

		assert.Equal(t, []string{"ListMessages", "GetConversation", "MarkConversationRead"}, srv.recorded())
	})

	t.Run("mark read runs even for an empty thread", func(t *testing.T) {
		markedRead := false
		srv := &spyAdapter{
			listMessagesFn: func(string) ([]models.Message, error) { return nil, nil },
			getConversationFn: func(string) (models.Conversation, error) {
				return models.Conversation{ConversationID: "c1"}, nil
			},
			markReadFn: func(string) error {
				markedRead = true
				return nil
			},
		}
		svc := NewThreadService(srv, logger.Nop())

		snapshot, err := svc.Sync(ctx, "c1")
		require.NoError(t, err)
		assert.Empty(t, snapshot.Messages)
		assert.True(t, markedRead)
	})

	t.Run("mark read failure does not fail the cycle", func(t *testing.T) {
		srv := &spyAdapter{
			listMessagesFn: func(string) ([]models.Message, error) { return nil, nil },
			getConversationFn: func(string) (models.Conversation, error) {
				return models.Conversation{ConversationID: "c1"}, nil
			},
			markReadFn: func(string) error { return adapter.ErrInternalServerError },
		}
		svc := NewThreadService(srv, logger.Nop())

		_, err := svc.Sync(ctx, "c1")
		assert.NoError(t, err)
	})

	t.Run("message fetch failure aborts the cycle before mark read", func(t *testing.T) {
		srv := &spyAdapter{
			listMessagesFn: func(string) ([]models.Message, error) { return nil, adapter.ErrNotFound },
		}
		svc := NewThreadService(srv, logger.Nop())

		_, err := svc.Sync(ctx, "c1")
		require.ErrorIs(t, err, adapter.ErrNotFound)
		assert.Equal(t, []string{"ListMessages"}, srv.recorded())
	})
}

func TestThreadService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("sends trimmed-nonempty text", func(t *testing.T) {
		srv := &spyAdapter{
			sendMessageFn: func(conversationID, text string) (models.Message, error) {
				assert.Equal(t, "c1", conversationID)
				assert.Equal(t, "hello", text)
				return models.Message{MessageID: "m1", Text: text}, nil
			},
		}
		svc := NewThreadService(srv, logger.Nop())

		require.NoError(t, svc.Send(ctx, "c1", "hello"))
		assert.Equal(t, []string{"SendMessage"}, srv.recorded())
	})

	t.Run("whitespace-only text sends nothing", func(t *testing.T) {
		srv := &spyAdapter{}
		svc := NewThreadService(srv, logger.Nop())

		require.NoError(t, svc.Send(ctx, "c1", "   \t\n"))
		assert.Empty(t, srv.recorded())
	})

	t.Run("transport failure is returned", func(t *testing.T) {
		srv := &spyAdapter{
			sendMessageFn: func(string, string) (models.Message, error) {
				return models.Message{}, adapter.ErrForbidden
			},
		}
		svc := NewThreadService(srv, logger.Nop())

		assert.ErrorIs(t, svc.Send(ctx, "c1", "hello"), adapter.ErrForbidden)
	})
}
