// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

// builder is the shared squirrel statement builder. Dollar placeholders work
// for both supported drivers: pgx natively, go-sqlite3 via ordinal $N
// parameters.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	usersTable         = "users"
	conversationsTable = "conversations"
	messagesTable      = "messages"
)

var (
	userColumns = []string{
		"user_id", "username", "password_hash", "display_name", "avatar", "created_at",
	}
	conversationColumns = []string{
		"conversation_id", "participant_a", "participant_b", "last_message", "last_message_time", "created_at",
	}
	messageColumns = []string{
		"message_id", "conversation_id", "sender_id", "receiver_id", "text", "status", "created_at",
	}
)

// participantsMatch builds the predicate joining two users in either
// participant order.
func participantsMatch(userA, userB string) sq.Sqlizer {
	return sq.Or{
		sq.And{sq.Eq{"participant_a": userA}, sq.Eq{"participant_b": userB}},
		sq.And{sq.Eq{"participant_a": userB}, sq.Eq{"participant_b": userA}},
	}
}

// involvesUser builds the predicate matching messages sent or received by
// the user.
func involvesUser(userID string) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"sender_id": userID},
		sq.Eq{"receiver_id": userID},
	}
}
