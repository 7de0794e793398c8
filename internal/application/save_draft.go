package application

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"forumpm/internal/domain"
	"forumpm/internal/observability"
)

// SaveDraft creates a draft when id is empty, or re-persists the edited
// fields of an existing one. The recipient is stored as typed and not
// resolved here: drafts must stay saveable while addressing an
// as-yet-unresolved or mistyped recipient, and resolution is deferred to
// send time.
func (s *Service) SaveDraft(
	ctx context.Context,
	sender, id string,
	cmd SendCommand,
) (*domain.Message, error) {

	if id == "" {
		msg, err := domain.NewDraft(uuid.NewString(), sender, cmd.Title, cmd.Body, cmd.Recipient, time.Now().UTC())
		if err != nil {
			return nil, err
		}

		err = s.tx.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
			return s.repo.InsertMessage(ctx, tx, msg)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to save draft: %w", err)
		}

		observability.DraftsSavedTotal.Inc()
		s.log.Info("draft created", zap.String("message_id", msg.ID), zap.String("sender", sender))
		return msg, nil
	}

	var result *domain.Message
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		msg, err := s.repo.GetMessageForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if msg.Sender != sender {
			return domain.ErrMessageNotFound
		}

		if err := msg.Edit(cmd.Title, cmd.Body, cmd.Recipient); err != nil {
			return err
		}

		if err := s.repo.UpdateMessage(ctx, tx, msg); err != nil {
			return fmt.Errorf("failed to update draft: %w", err)
		}
		result = msg
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.DraftsSavedTotal.Inc()
	s.log.Info("draft saved", zap.String("message_id", id), zap.String("sender", sender))
	return result, nil
}
