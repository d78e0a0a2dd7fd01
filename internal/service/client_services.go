// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
)

// ClientServices groups the client-side services passed to the terminal UI.
type ClientServices struct {
	SessionService   SessionService
	DirectoryService DirectoryService
	ThreadService    ThreadService
	ThreadPoller     *ThreadPoller
}

// NewClientServices wires the client service layer on top of the server
// adapter and the local session store.
func NewClientServices(srv adapter.ServerAdapter, sessions store.SessionStore, cfg config.ClientSync, logger *logger.Logger) *ClientServices {
	thread := NewThreadService(srv, logger)

	return &ClientServices{
		SessionService:   NewSessionService(srv, sessions, logger),
		DirectoryService: NewDirectoryService(srv, logger),
		ThreadService:    thread,
		ThreadPoller:     NewThreadPoller(thread, cfg.PollInterval, logger),
	}
}
