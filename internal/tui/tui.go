// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the messenger
// client on top of Bubble Tea. The authentication flow and the main loop
// run as separate programs; the main loop hosts both the chat list and the
// open conversation view.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// ErrUserQuit is returned when the user closes the program from the
// authentication flow.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services     *service.ClientServices
	pollInterval time.Duration
}

func New(services *service.ClientServices, cfg config.ClientSync, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, pollInterval: cfg.PollInterval}, nil
}

// LoginFlow runs the menu/login/register pages until the user is
// authenticated or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.SessionService),
		"register": NewRegisterModel(ctx, t.services.SessionService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the chat list and conversation views until the user quits
// or logs out.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session, t.pollInterval)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
