package http

import (
	"github.com/go-chi/chi/v5"

	"forumpm/internal/observability"
)

func NewRouter(h *MessageHandler, serviceName string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(observability.MetricsMiddleware(serviceName))
	r.Use(RequireUser)

	r.Route("/pm", func(r chi.Router) {
		r.Get("/inbox", h.Inbox)
		r.Get("/outbox", h.Outbox)
		r.Get("/drafts", h.Drafts)
		r.Get("/unread", h.UnreadCount)

		r.Post("/send", h.Send)
		r.Post("/save", h.Save)

		r.Get("/{id}", h.Show)
		r.Get("/{id}/reply", h.Reply)
		r.Get("/{id}/quote", h.Quote)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
