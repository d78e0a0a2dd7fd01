package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// conversationRepository is the SQL-backed implementation of
// [ConversationRepository].
type conversationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewConversationRepository constructs a [ConversationRepository] backed by
// the provided database connection and logger.
func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateConversation persists a new thread.
func (r *conversationRepository) CreateConversation(ctx context.Context, conv models.ConversationRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Insert(conversationsTable).
		Columns(conversationColumns...).
		Values(conv.ConversationID, conv.ParticipantA, conv.ParticipantB, conv.LastMessage, conv.LastMessageTime, conv.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create conversation query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*conversationRepository.CreateConversation").Msg("error inserting conversation")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// GetConversation retrieves a thread by ID.
func (r *conversationRepository) GetConversation(ctx context.Context, conversationID string) (models.ConversationRecord, error) {
	query, args, err := builder.
		Select(conversationColumns...).
		From(conversationsTable).
		Where(sq.Eq{"conversation_id": conversationID}).
		ToSql()
	if err != nil {
		return models.ConversationRecord{}, fmt.Errorf("build get conversation query: %w", err)
	}

	return r.scanConversation(ctx, query, args...)
}

// FindConversationBetween retrieves the thread joining the two users,
// regardless of participant order.
func (r *conversationRepository) FindConversationBetween(ctx context.Context, userA, userB string) (models.ConversationRecord, error) {
	query, args, err := builder.
		Select(conversationColumns...).
		From(conversationsTable).
		Where(participantsMatch(userA, userB)).
		ToSql()
	if err != nil {
		return models.ConversationRecord{}, fmt.Errorf("build find conversation query: %w", err)
	}

	return r.scanConversation(ctx, query, args...)
}

// ListConversationsForUser returns the user's threads, most recent activity
// first. Threads that never had a message sort last.
func (r *conversationRepository) ListConversationsForUser(ctx context.Context, userID string) ([]models.ConversationRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select(conversationColumns...).
		From(conversationsTable).
		Where(sq.Or{sq.Eq{"participant_a": userID}, sq.Eq{"participant_b": userID}}).
		OrderBy("last_message_time IS NULL", "last_message_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list conversations query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.ListConversationsForUser").Msg("error querying conversations")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var conversations []models.ConversationRecord
	for rows.Next() {
		var c models.ConversationRecord
		if err = rows.Scan(&c.ConversationID, &c.ParticipantA, &c.ParticipantB, &c.LastMessage, &c.LastMessageTime, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan conversation row: %w", err)
		}
		conversations = append(conversations, c)
	}

	return conversations, rows.Err()
}

// UpdateLastMessage refreshes the thread's preview text and activity
// timestamp.
func (r *conversationRepository) UpdateLastMessage(ctx context.Context, conversationID, preview string, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Update(conversationsTable).
		Set("last_message", preview).
		Set("last_message_time", at).
		Where(sq.Eq{"conversation_id": conversationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update last message query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*conversationRepository.UpdateLastMessage").Msg("error updating conversation")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *conversationRepository) scanConversation(ctx context.Context, query string, args ...any) (models.ConversationRecord, error) {
	log := logger.FromContext(ctx)

	var c models.ConversationRecord
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&c.ConversationID, &c.ParticipantA, &c.ParticipantB, &c.LastMessage, &c.LastMessageTime, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ConversationRecord{}, ErrConversationNotFound
		}
		log.Err(err).Str("func", "*conversationRepository.scanConversation").Msg("error scanning conversation")
		return models.ConversationRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return c, nil
}
