package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/migrations"
)

// Storages groups the server-side repositories into a single value passed to
// the service layer.
type Storages struct {
	UserRepository         UserRepository
	ConversationRepository ConversationRepository
	MessageRepository      MessageRepository
}

// NewStorages initialises the server storage layer: it opens the database
// selected by cfg.DB.DSN, runs pending schema migrations, and wires the
// repositories.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := migrations.Migrate(db.DB, db.Dialect); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		ConversationRepository: NewConversationRepository(db, logger),
		MessageRepository:      NewMessageRepository(db, logger),
	}, nil
}
