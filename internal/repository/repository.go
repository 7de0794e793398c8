package repository

import (
	"context"
	"database/sql"

	"forumpm/internal/domain"
)

// Repository is the message store contract. It owns durability and
// per-record atomicity only; lifecycle policy lives in the domain and
// the application layer, and the store never rejects a transition.
type Repository interface {
	InsertMessage(ctx context.Context, tx *sql.Tx, msg *domain.Message) error
	UpdateMessage(ctx context.Context, tx *sql.Tx, msg *domain.Message) error

	// GetMessage returns domain.ErrMessageNotFound when no record exists.
	GetMessage(ctx context.Context, id string) (*domain.Message, error)
	// GetMessageForUpdate locks the row for the lifetime of tx so that
	// concurrent read-modify-write cycles on one message serialize.
	GetMessageForUpdate(ctx context.Context, tx *sql.Tx, id string) (*domain.Message, error)

	// FindByOwnerAndStatus lists the owner's messages on the given side
	// with any of the given statuses, most recent first. Records the
	// owner soft-deleted on that side are filtered out.
	FindByOwnerAndStatus(ctx context.Context, owner string, role domain.Role, statuses []domain.Status) ([]*domain.Message, error)

	// CountUnread counts inbox messages the recipient has not read yet.
	CountUnread(ctx context.Context, recipient string) (int64, error)
}
