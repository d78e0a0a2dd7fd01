// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
	"github.com/MKhiriev/go-chat-messenger/models"
)

type sessionService struct {
	adapter adapter.ServerAdapter
	store   store.SessionStore
	logger  *logger.Logger

	mu      sync.RWMutex
	current models.Session
}

// NewSessionService returns the client session service.
func NewSessionService(srv adapter.ServerAdapter, sessions store.SessionStore, logger *logger.Logger) SessionService {
	return &sessionService{adapter: srv, store: sessions, logger: logger}
}

// Register implements [SessionService].
func (s *sessionService) Register(ctx context.Context, username, password, displayName string) (models.Session, error) {
	session, err := s.adapter.Register(ctx, models.RegisterRequest{
		Username:    username,
		Password:    password,
		DisplayName: displayName,
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("register: %w", err)
	}

	return s.adopt(ctx, session), nil
}

// Login implements [SessionService].
func (s *sessionService) Login(ctx context.Context, username, password string) (models.Session, error) {
	session, err := s.adapter.Login(ctx, models.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	return s.adopt(ctx, session), nil
}

// Restore implements [SessionService].
func (s *sessionService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.store.LoadSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	s.adapter.SetToken(session.Token)
	s.setCurrent(session)

	return session, nil
}

// Logout implements [SessionService].
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.store.ClearSession(ctx); err != nil {
		s.logger.Err(err).Str("func", "Logout").Msg("error clearing persisted session")
		return fmt.Errorf("error clearing persisted session")
	}

	s.adapter.ClearToken()
	s.setCurrent(models.Session{})

	return nil
}

// Current implements [SessionService].
func (s *sessionService) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// adopt makes a freshly obtained session the active one: the adapter gets
// its token and the session is persisted for the next start. Persistence
// failures are logged but do not fail the login; the session still works for
// this run.
func (s *sessionService) adopt(ctx context.Context, session models.Session) models.Session {
	s.adapter.SetToken(session.Token)
	s.setCurrent(session)

	if err := s.store.SaveSession(ctx, session); err != nil {
		s.logger.Err(err).Str("func", "adopt").Msg("error persisting session")
	}

	return session
}

func (s *sessionService) setCurrent(session models.Session) {
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
}
