// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the client services and the background
// polling into a single process lifecycle.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
	"github.com/MKhiriev/go-chat-messenger/internal/tui"
)

// Client is the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run restores the persisted session or walks the user through the
// authentication flow, then enters the main loop. Logging out returns to
// the authentication flow instead of exiting.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.SessionService.Restore(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}

		session, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	} else {
		a.logger.Info().Str("userId", session.UserID).Msg("session restored")
	}

	logout, err := a.tui.MainLoop(ctx, session)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.SessionService.Logout(ctx); err != nil {
			a.logger.Err(err).Msg("logout failed")
		}
		return a.Run()
	}

	return nil
}

var _ Client = (*App)(nil)
