package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// messageRepository is the SQL-backed implementation of [MessageRepository].
type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage persists a new message.
func (r *messageRepository) CreateMessage(ctx context.Context, msg models.MessageRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Insert(messagesTable).
		Columns(messageColumns...).
		Values(msg.MessageID, msg.ConversationID, msg.SenderID, msg.ReceiverID, msg.Text, msg.Status, msg.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create message query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error inserting message")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ListMessagesByConversation returns the thread's messages chronologically.
// The array order is the ordering contract of the API; clients do not
// re-sort.
func (r *messageRepository) ListMessagesByConversation(ctx context.Context, conversationID string) ([]models.MessageRecord, error) {
	query, args, err := builder.
		Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("created_at", "message_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list messages query: %w", err)
	}

	return r.queryMessages(ctx, query, args...)
}

// CountUnread returns how many messages addressed to receiverID in the
// thread are still unread.
func (r *messageRepository) CountUnread(ctx context.Context, conversationID, receiverID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select("COUNT(*)").
		From(messagesTable).
		Where(sq.And{
			sq.Eq{"conversation_id": conversationID},
			sq.Eq{"receiver_id": receiverID},
			sq.NotEq{"status": models.StatusRead},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count unread query: %w", err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*messageRepository.CountUnread").Msg("error counting unread messages")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

// MarkConversationRead promotes all of receiverID's unread messages in the
// thread to read. Running it again is a no-op, which keeps the operation
// idempotent for the client's every-cycle read marking.
func (r *messageRepository) MarkConversationRead(ctx context.Context, conversationID, receiverID string) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Update(messagesTable).
		Set("status", models.StatusRead).
		Where(sq.And{
			sq.Eq{"conversation_id": conversationID},
			sq.Eq{"receiver_id": receiverID},
			sq.NotEq{"status": models.StatusRead},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark read query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*messageRepository.MarkConversationRead").Msg("error marking messages read")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ListMessagesAfter returns messages involving userID created after the
// cursor message. The cursor is resolved to its creation time first; an
// unknown cursor yields [ErrMessageNotFound].
func (r *messageRepository) ListMessagesAfter(ctx context.Context, userID, afterMessageID string) ([]models.MessageRecord, error) {
	where := sq.And{involvesUser(userID)}

	if afterMessageID != "" {
		cursor, err := r.getMessage(ctx, afterMessageID)
		if err != nil {
			return nil, err
		}
		where = append(where, sq.Gt{"created_at": cursor.CreatedAt})
	}

	query, args, err := builder.
		Select(messageColumns...).
		From(messagesTable).
		Where(where).
		OrderBy("created_at", "message_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list messages after query: %w", err)
	}

	return r.queryMessages(ctx, query, args...)
}

func (r *messageRepository) getMessage(ctx context.Context, messageID string) (models.MessageRecord, error) {
	query, args, err := builder.
		Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"message_id": messageID}).
		ToSql()
	if err != nil {
		return models.MessageRecord{}, fmt.Errorf("build get message query: %w", err)
	}

	var m models.MessageRecord
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&m.MessageID, &m.ConversationID, &m.SenderID, &m.ReceiverID, &m.Text, &m.Status, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MessageRecord{}, ErrMessageNotFound
		}
		return models.MessageRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return m, nil
}

func (r *messageRepository) queryMessages(ctx context.Context, query string, args ...any) ([]models.MessageRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.queryMessages").Msg("error querying messages")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var messages []models.MessageRecord
	for rows.Next() {
		var m models.MessageRecord
		if err = rows.Scan(&m.MessageID, &m.ConversationID, &m.SenderID, &m.ReceiverID, &m.Text, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
