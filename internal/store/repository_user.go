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

// userRepository is the SQL-backed implementation of [UserRepository]. It
// handles account creation and lookup against the "users" table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record.
//
// Error handling:
//   - unique constraint violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(account.UserID, account.Username, account.PasswordHash, account.DisplayName, account.Avatar, account.CreatedAt).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("build create user query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if isUniqueViolation(err) {
			return models.Account{}, ErrUsernameAlreadyExists
		}
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// FindUserByUsername retrieves the account whose login name matches username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.Account, error) {
	query, args, err := builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("build find user query: %w", err)
	}

	return r.scanAccount(ctx, query, args...)
}

// GetUser retrieves the account with the given ID.
func (r *userRepository) GetUser(ctx context.Context, userID string) (models.Account, error) {
	query, args, err := builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("build get user query: %w", err)
	}

	return r.scanAccount(ctx, query, args...)
}

// ListUsers returns every account except excludeUserID, ordered by display
// name for a stable directory listing.
func (r *userRepository) ListUsers(ctx context.Context, excludeUserID string) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.NotEq{"user_id": excludeUserID}).
		OrderBy("display_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err = rows.Scan(&a.UserID, &a.Username, &a.PasswordHash, &a.DisplayName, &a.Avatar, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (r *userRepository) scanAccount(ctx context.Context, query string, args ...any) (models.Account, error) {
	log := logger.FromContext(ctx)

	var a models.Account
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&a.UserID, &a.Username, &a.PasswordHash, &a.DisplayName, &a.Avatar, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.scanAccount").Msg("error scanning user")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return a, nil
}
