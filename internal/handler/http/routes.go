package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestLogger)
	router.Use(h.withLogging)
	router.Use(h.withGzipResponse)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind JWT authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/{id}", h.getUser)

		r.Get("/api/conversations", h.listConversations)
		r.Get("/api/conversations/{id}", h.getConversation)
		r.Post("/api/conversations/start/{userId}", h.startConversation)
		r.Get("/api/conversations/{id}/messages", h.listMessages)
		r.Post("/api/conversations/{id}/messages", h.sendMessage)
		r.Put("/api/conversations/{id}/read", h.markConversationRead)

		r.Get("/api/messages/poll", h.pollMessages)
	})

	return router
}
