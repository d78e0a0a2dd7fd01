// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic of the messenger, on both
// sides of the wire: the server services sit between the HTTP handlers and
// the repositories, the client services sit between the terminal UI and the
// server adapter.
package service

import (
	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/presence"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
)

// Services groups the server-side services passed to the HTTP handlers.
type Services struct {
	AuthService AuthService
	ChatService ChatService
}

// NewServices wires the server service layer on top of the repositories and
// the presence tracker.
func NewServices(storages *store.Storages, tracker presence.Tracker, cfg config.ServerApp, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, tracker, cfg, logger),
		ChatService: NewChatService(storages, tracker, logger),
	}
}
