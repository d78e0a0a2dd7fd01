// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/presence"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
	"github.com/MKhiriev/go-chat-messenger/internal/utils"
	"github.com/MKhiriev/go-chat-messenger/models"
)

const avatarURLTemplate = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s"

type authService struct {
	users    store.UserRepository
	presence presence.Tracker
	cfg      config.ServerApp
	logger   *logger.Logger
}

// NewAuthService returns the registration and login service.
func NewAuthService(users store.UserRepository, tracker presence.Tracker, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{users: users, presence: tracker, cfg: cfg, logger: logger}
}

// Register implements [AuthService].
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	displayName := strings.TrimSpace(req.DisplayName)
	if username == "" || req.Password == "" || displayName == "" {
		return models.AuthResponse{}, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Err(err).Str("func", "Register").Msg("error hashing password")
		return models.AuthResponse{}, fmt.Errorf("error hashing password")
	}

	account := models.Account{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Avatar:       fmt.Sprintf(avatarURLTemplate, url.QueryEscape(username)),
	}

	created, err := s.users.CreateUser(ctx, account)
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.AuthResponse{}, ErrUsernameTaken
		}
		s.logger.Err(err).Str("func", "Register").Msg("error creating user")
		return models.AuthResponse{}, fmt.Errorf("error creating user")
	}

	return s.issueToken(ctx, created)
}

// Login implements [AuthService].
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	account, err := s.users.FindUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		s.logger.Err(err).Str("func", "Login").Msg("error finding user")
		return models.AuthResponse{}, fmt.Errorf("error finding user")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return s.issueToken(ctx, account)
}

// VerifyToken implements [AuthService].
func (s *authService) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	if err = s.presence.MarkOnline(ctx, token.UserID); err != nil {
		s.logger.Err(err).Str("func", "VerifyToken").Msg("error refreshing presence")
	}

	return token.UserID, nil
}

func (s *authService) issueToken(ctx context.Context, account models.Account) (models.AuthResponse, error) {
	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, account.UserID, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		s.logger.Err(err).Str("func", "issueToken").Msg("error generating token")
		return models.AuthResponse{}, fmt.Errorf("error generating token")
	}

	if err = s.presence.MarkOnline(ctx, account.UserID); err != nil {
		s.logger.Err(err).Str("func", "issueToken").Msg("error marking user online")
	}

	return models.AuthResponse{
		UserID:      account.UserID,
		Token:       token.SignedString,
		DisplayName: account.DisplayName,
	}, nil
}
