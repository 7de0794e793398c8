package application

import (
	"context"
	"database/sql"
	"fmt"

	"forumpm/internal/observability"
)

// MarkAsRead flips an unread message to read when the reader is its
// recipient. Anything else -- the sender looking at its outbox, a message
// already read, a draft -- is a deliberate no-op that writes nothing and
// never surfaces an error.
func (s *Service) MarkAsRead(ctx context.Context, reader, id string) error {
	var (
		changed   bool
		recipient string
	)

	// Side effects run after the transaction commits; the closure may be
	// retried, so nothing observable happens inside it.
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		msg, err := s.repo.GetMessageForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if !msg.MarkReadBy(reader) {
			return nil
		}

		if err := s.repo.UpdateMessage(ctx, tx, msg); err != nil {
			return fmt.Errorf("failed to mark message read: %w", err)
		}

		changed = true
		recipient = msg.Recipient
		return nil
	})
	if err != nil || !changed {
		return err
	}

	observability.MessagesReadTotal.Inc()
	if s.unread != nil {
		_ = s.unread.Invalidate(ctx, recipient)
	}
	return nil
}
