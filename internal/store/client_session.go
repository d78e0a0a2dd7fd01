// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// The persisted session occupies exactly two entries in the client key/value
// table: the bearer token and the minimal user identity. They are written and
// deleted together so a half-cleared session cannot be restored.
const (
	sessionTokenKey = "session_token"
	sessionUserKey  = "session_user"
)

const clientSchema = `
CREATE TABLE IF NOT EXISTS client_kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

// SessionStore persists the client session across restarts.
type SessionStore interface {
	// SaveSession writes both session entries. The previous session, if any,
	// is overwritten.
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession restores the persisted session. Returns
	// [ErrLocalSessionNotFound] if either entry is missing.
	LoadSession(ctx context.Context) (models.Session, error)
	// ClearSession deletes both session entries. Idempotent.
	ClearSession(ctx context.Context) error
}

type sessionStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// persistedIdentity is the JSON shape of the session_user entry.
type persistedIdentity struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// NewSessionStore opens (and creates, if needed) the client SQLite database
// at cfg.DBPath and ensures the key/value table exists.
func NewSessionStore(cfg config.ClientStorage, log *logger.Logger) (SessionStore, error) {
	if err := createLocalDBFileIfNotExists(cfg.DBPath); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error creating client database file")
		return nil, fmt.Errorf("error creating client database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening client database: %w", err)
	}

	if _, err = conn.Exec(clientSchema); err != nil {
		return nil, fmt.Errorf("error creating client schema: %w", err)
	}

	return &sessionStore{db: conn, logger: log}, nil
}

// SaveSession implements [SessionStore]. Both entries are written in one
// transaction so a crash cannot leave a token without an identity.
func (s *sessionStore) SaveSession(ctx context.Context, session models.Session) error {
	identity, err := json.Marshal(persistedIdentity{
		UserID:      session.UserID,
		DisplayName: session.DisplayName,
	})
	if err != nil {
		return fmt.Errorf("encode session identity: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save session: %w", err)
	}
	defer tx.Rollback()

	if err = s.upsert(ctx, tx, sessionTokenKey, session.Token); err != nil {
		return err
	}
	if err = s.upsert(ctx, tx, sessionUserKey, string(identity)); err != nil {
		return err
	}

	return tx.Commit()
}

// LoadSession implements [SessionStore].
func (s *sessionStore) LoadSession(ctx context.Context) (models.Session, error) {
	token, err := s.get(ctx, sessionTokenKey)
	if err != nil {
		return models.Session{}, err
	}

	rawIdentity, err := s.get(ctx, sessionUserKey)
	if err != nil {
		return models.Session{}, err
	}

	var identity persistedIdentity
	if err = json.Unmarshal([]byte(rawIdentity), &identity); err != nil {
		return models.Session{}, fmt.Errorf("decode session identity: %w", err)
	}

	session := models.Session{
		UserID:      identity.UserID,
		DisplayName: identity.DisplayName,
		Token:       token,
	}
	if !session.Authenticated() {
		return models.Session{}, ErrLocalSessionNotFound
	}

	return session, nil
}

// ClearSession implements [SessionStore].
func (s *sessionStore) ClearSession(ctx context.Context) error {
	query, args, err := builder.
		Delete("client_kv").
		Where(sq.Eq{"key": []string{sessionTokenKey, sessionUserKey}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear session query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *sessionStore) upsert(ctx context.Context, tx *sql.Tx, key, value string) error {
	query, args, err := builder.
		Insert("client_kv").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}

	return nil
}

func (s *sessionStore) get(ctx context.Context, key string) (string, error) {
	query, args, err := builder.
		Select("value").
		From("client_kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build get query: %w", err)
	}

	var value string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLocalSessionNotFound
		}
		return "", fmt.Errorf("get %s: %w", key, err)
	}

	return value, nil
}
