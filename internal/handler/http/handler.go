// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the messenger server.
// It provides middleware, route handlers and request/response utilities for
// the REST API. Authentication, logging and compression concerns are handled
// at this layer before requests are forwarded to the service layer.
//
// Every non-2xx response carries the JSON body {"detail": "..."}; clients
// rely on that shape for error display.
package http

import (
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
