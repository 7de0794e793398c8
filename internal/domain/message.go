package domain

import (
	"strings"
	"time"
)

const MaxTitleSize = 120

// Status is the lifecycle position of a private message.
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusSentUnread Status = "SENT_UNREAD"
	StatusSentRead   Status = "SENT_READ"
)

// Role qualifies which side of a message an owner is on when querying folders.
type Role string

const (
	RoleSender    Role = "sender"
	RoleRecipient Role = "recipient"
)

// Message Invariants:
// 1. Lifecycle: Status only moves forward: DRAFT -> SENT_UNREAD -> SENT_READ.
// 2. Visibility: a message reaches the recipient's inbox only through Send.
// 3. Deletion: soft flags per side. Rows are never removed, so the other
//    party keeps its view.
type Message struct {
	ID        string
	Sender    string
	Recipient string // as typed by the sender; canonicalized at send time
	Title     string
	Body      string
	Status    Status
	CreatedAt time.Time
	SentAt    *time.Time

	DeletedBySender    bool
	DeletedByRecipient bool
}

// NewDraft builds an unsent message owned by sender. Title, body and
// recipient may still be empty or unresolvable; they are only validated
// when the draft is sent.
func NewDraft(id, sender, title, body, recipient string, now time.Time) (*Message, error) {
	if id == "" || sender == "" {
		return nil, ErrInvalidMessage
	}
	if len(title) > MaxTitleSize {
		return nil, ErrInvalidMessage
	}

	return &Message{
		ID:        id,
		Sender:    sender,
		Recipient: recipient,
		Title:     title,
		Body:      body,
		Status:    StatusDraft,
		CreatedAt: now,
	}, nil
}

// Edit re-persists draft fields in place. Only drafts are editable; the
// identifier and status never change.
func (m *Message) Edit(title, body, recipient string) error {
	if m.Status != StatusDraft {
		return ErrInvalidState
	}
	if len(title) > MaxTitleSize {
		return ErrInvalidMessage
	}

	m.Title = title
	m.Body = body
	m.Recipient = recipient
	return nil
}

// Send commits the draft and makes it visible to the recipient. The
// recipient argument is the canonical account reference produced by the
// identity resolver and is snapshotted onto the message. Sending anything
// that is not a draft fails with ErrInvalidState, so two concurrent sends
// of the same draft cannot both succeed.
func (m *Message) Send(recipient string, now time.Time) error {
	if m.Status != StatusDraft {
		return ErrInvalidState
	}
	if recipient == "" {
		return ErrRecipientNotFound
	}
	if strings.TrimSpace(m.Title) == "" || strings.TrimSpace(m.Body) == "" {
		return ErrInvalidMessage
	}

	m.Recipient = recipient
	m.Status = StatusSentUnread
	sentAt := now
	m.SentAt = &sentAt
	return nil
}

// MarkReadBy moves an unread message to read when, and only when, the
// reader is the recipient. Every other combination is a silent no-op:
// already-read messages stay read, drafts stay drafts, and a sender
// peeking at its own outbox never flips the flag. Returns whether the
// status changed.
func (m *Message) MarkReadBy(reader string) bool {
	if m.Status != StatusSentUnread || reader != m.Recipient {
		return false
	}
	m.Status = StatusSentRead
	return true
}

// InInboxOf reports whether owner sees this message in the inbox folder.
func (m *Message) InInboxOf(owner string) bool {
	return m.sent() && m.Recipient == owner && !m.DeletedByRecipient
}

// InOutboxOf reports whether owner sees this message in the outbox folder.
func (m *Message) InOutboxOf(owner string) bool {
	return m.sent() && m.Sender == owner && !m.DeletedBySender
}

// InDraftsOf reports whether owner sees this message in the drafts folder.
func (m *Message) InDraftsOf(owner string) bool {
	return m.Status == StatusDraft && m.Sender == owner && !m.DeletedBySender
}

// VisibleTo reports whether user may read this message at all, i.e. it
// shows up in at least one of the user's folders.
func (m *Message) VisibleTo(user string) bool {
	return m.InInboxOf(user) || m.InOutboxOf(user) || m.InDraftsOf(user)
}

func (m *Message) sent() bool {
	return m.Status == StatusSentUnread || m.Status == StatusSentRead
}
