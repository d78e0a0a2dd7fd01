package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
	"github.com/MKhiriev/go-chat-messenger/models"
)

func TestSessionService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success arms adapter and persists session", func(t *testing.T) {
		srv := &spyAdapter{
			loginFn: func(req models.LoginRequest) (models.Session, error) {
				return models.Session{UserID: "u1", DisplayName: "Alice", Token: "jwt-1"}, nil
			},
		}
		sessions := &memorySessionStore{}
		svc := NewSessionService(srv, sessions, logger.Nop())

		session, err := svc.Login(ctx, "alice", "secret")
		require.NoError(t, err)

		assert.Equal(t, "u1", session.UserID)
		assert.Equal(t, "jwt-1", srv.Token())
		assert.Equal(t, session, svc.Current())

		persisted, err := sessions.LoadSession(ctx)
		require.NoError(t, err)
		assert.Equal(t, session, persisted)
	})

	t.Run("failure leaves state unchanged", func(t *testing.T) {
		srv := &spyAdapter{
			loginFn: func(req models.LoginRequest) (models.Session, error) {
				return models.Session{}, adapter.ErrUnauthorized
			},
		}
		sessions := &memorySessionStore{}
		svc := NewSessionService(srv, sessions, logger.Nop())

		_, err := svc.Login(ctx, "alice", "wrong")
		require.ErrorIs(t, err, adapter.ErrUnauthorized)

		assert.Empty(t, srv.Token())
		assert.False(t, svc.Current().Authenticated())
		_, err = sessions.LoadSession(ctx)
		assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
	})

	t.Run("persist failure does not fail the login", func(t *testing.T) {
		srv := &spyAdapter{
			loginFn: func(req models.LoginRequest) (models.Session, error) {
				return models.Session{UserID: "u1", Token: "jwt-1"}, nil
			},
		}
		sessions := &memorySessionStore{saveErr: errors.New("disk full")}
		svc := NewSessionService(srv, sessions, logger.Nop())

		session, err := svc.Login(ctx, "alice", "secret")
		require.NoError(t, err)
		assert.True(t, session.Authenticated())
		assert.Equal(t, "jwt-1", srv.Token())
	})
}

func TestSessionService_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("restores persisted session and arms adapter", func(t *testing.T) {
		srv := &spyAdapter{}
		sessions := &memorySessionStore{}
		require.NoError(t, sessions.SaveSession(ctx, models.Session{UserID: "u1", DisplayName: "Alice", Token: "jwt-1"}))
		svc := NewSessionService(srv, sessions, logger.Nop())

		session, err := svc.Restore(ctx)
		require.NoError(t, err)

		assert.Equal(t, "u1", session.UserID)
		assert.Equal(t, "jwt-1", srv.Token())
		assert.Equal(t, session, svc.Current())
	})

	t.Run("nothing persisted", func(t *testing.T) {
		svc := NewSessionService(&spyAdapter{}, &memorySessionStore{}, logger.Nop())

		_, err := svc.Restore(ctx)
		assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
	})
}

func TestSessionService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears token and persisted session", func(t *testing.T) {
		srv := &spyAdapter{
			loginFn: func(req models.LoginRequest) (models.Session, error) {
				return models.Session{UserID: "u1", Token: "jwt-1"}, nil
			},
		}
		sessions := &memorySessionStore{}
		svc := NewSessionService(srv, sessions, logger.Nop())

		_, err := svc.Login(ctx, "alice", "secret")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx))

		assert.Empty(t, srv.Token())
		assert.False(t, svc.Current().Authenticated())
		_, err = sessions.LoadSession(ctx)
		assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
	})

	t.Run("idempotent without a session", func(t *testing.T) {
		svc := NewSessionService(&spyAdapter{}, &memorySessionStore{}, logger.Nop())

		require.NoError(t, svc.Logout(ctx))
		require.NoError(t, svc.Logout(ctx))
	})
}
