package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"forumpm/internal/application"
)

// MessageHandler is thin request glue: it binds form fields to commands,
// delegates to the messaging service and maps errors. No policy lives here.
type MessageHandler struct {
	svc *application.Service
	log *zap.Logger
}

func NewMessageHandler(svc *application.Service, log *zap.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: log}
}

type messageForm struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Recipient string `json:"recipient"`
}

func (f messageForm) command() application.SendCommand {
	return application.SendCommand{
		Title:     f.Title,
		Body:      f.Body,
		Recipient: f.Recipient,
	}
}

// Send delivers a new message, or an existing draft when the form carries
// an id.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var form messageForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	var err error
	var msg any
	if form.ID != "" {
		msg, err = h.svc.SendDraft(r.Context(), requester(r), form.ID, form.command())
	} else {
		msg, err = h.svc.SendMessage(r.Context(), requester(r), form.command())
	}
	if err != nil {
		serviceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Save stores a draft without delivering it.
func (h *MessageHandler) Save(w http.ResponseWriter, r *http.Request) {
	var form messageForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	msg, err := h.svc.SaveDraft(r.Context(), requester(r), form.ID, form.command())
	if err != nil {
		serviceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Show returns one message. Opening it from the inbox (?folder=inbox)
// marks it read as a side effect, which is the only way a message ever
// becomes read.
func (h *MessageHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if r.URL.Query().Get("folder") == "inbox" {
		if err := h.svc.MarkAsRead(r.Context(), requester(r), id); err != nil {
			serviceError(w, h.log, err)
			return
		}
	}

	msg, err := h.svc.GetMessage(r.Context(), requester(r), id)
	if err != nil {
		serviceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetInboxForOwner(r.Context(), requester(r))
	if err != nil {
		serviceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *MessageHandler) Outbox(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetOutboxForOwner(r.Context(), requester(r))
	if err != nil {
		serviceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *MessageHandler) Drafts(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetDraftsForOwner(r.Context(), requester(r))
	if err != nil {
		serviceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// UnreadCount feeds the forum header's new-messages badge.
func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.NewMessagesCount(r.Context(), requester(r))
	if err != nil {
		serviceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"unread": n})
}

// Reply returns an unsaved draft pre-filled for answering the message.
func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	draft, err := h.svc.ReplyTo(r.Context(), requester(r), chi.URLParam(r, "id"))
	if err != nil {
		serviceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Quote is Reply with the original body block-quoted in.
func (h *MessageHandler) Quote(w http.ResponseWriter, r *http.Request) {
	draft, err := h.svc.QuoteOf(r.Context(), requester(r), chi.URLParam(r, "id"))
	if err != nil {
		serviceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Delete soft-deletes the message on the requester's side.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMessage(r.Context(), requester(r), chi.URLParam(r, "id")); err != nil {
		serviceError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
