package application

import (
	"context"
	"database/sql"
	"fmt"

	"forumpm/internal/domain"
)

// DeleteMessage hides a message from the requester's folders. Deletion is
// soft and per side: the row stays so the other party keeps its view.
// Deleting twice is an idempotent no-op on either side; deleting a
// message the requester never could see fails with NotFound.
func (s *Service) DeleteMessage(ctx context.Context, requester, id string) error {
	var invalidate bool

	err := s.tx.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		msg, err := s.repo.GetMessageForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		switch {
		case msg.Sender == requester:
			if msg.DeletedBySender {
				return nil
			}
			msg.DeletedBySender = true
		case msg.Recipient == requester && msg.Status != domain.StatusDraft:
			if msg.DeletedByRecipient {
				return nil
			}
			invalidate = msg.Status == domain.StatusSentUnread
			msg.DeletedByRecipient = true
		default:
			return domain.ErrMessageNotFound
		}

		if err := s.repo.UpdateMessage(ctx, tx, msg); err != nil {
			return fmt.Errorf("failed to delete message: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if invalidate && s.unread != nil {
		_ = s.unread.Invalidate(ctx, requester)
	}
	return nil
}
