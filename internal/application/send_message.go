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

// SendCommand carries the raw form fields bound by the presentation layer.
type SendCommand struct {
	Title     string
	Body      string
	Recipient string
}

// SendMessage creates a new message and delivers it in one step. The
// recipient must resolve at this moment; when it does not, nothing is
// persisted and the caller gets domain.ErrRecipientNotFound to re-prompt
// the user with.
func (s *Service) SendMessage(
	ctx context.Context,
	sender string,
	cmd SendCommand,
) (*domain.Message, error) {

	recipient, err := s.resolver.Resolve(ctx, cmd.Recipient)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	msg, err := domain.NewDraft(uuid.NewString(), sender, cmd.Title, cmd.Body, cmd.Recipient, now)
	if err != nil {
		return nil, err
	}
	if err := msg.Send(recipient, now); err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.repo.InsertMessage(ctx, tx, msg)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	s.afterSend(ctx, msg)
	return msg, nil
}

// SendDraft delivers an existing draft. Field edits from the form are
// applied first, then the draft transitions exactly as a fresh send
// would. The row is locked for the whole read-modify-write, so of two
// concurrent sends on one draft the loser observes ErrInvalidState.
func (s *Service) SendDraft(
	ctx context.Context,
	sender, id string,
	cmd SendCommand,
) (*domain.Message, error) {

	recipient, err := s.resolver.Resolve(ctx, cmd.Recipient)
	if err != nil {
		return nil, err
	}

	var result *domain.Message
	err = s.tx.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
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
		if err := msg.Send(recipient, time.Now().UTC()); err != nil {
			return err
		}

		if err := s.repo.UpdateMessage(ctx, tx, msg); err != nil {
			return fmt.Errorf("failed to update message: %w", err)
		}
		result = msg
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterSend(ctx, result)
	return result, nil
}

// afterSend runs the post-commit side effects. None of them may fail the
// send: the message is already durable and visible.
func (s *Service) afterSend(ctx context.Context, msg *domain.Message) {
	observability.MessagesSentTotal.Inc()

	if s.unread != nil {
		_ = s.unread.Invalidate(ctx, msg.Recipient)
	}

	if s.notifier != nil {
		if err := s.notifier.MessageSent(ctx, msg); err != nil {
			s.log.Warn("notification dispatch failed",
				zap.String("message_id", msg.ID),
				zap.Error(err),
			)
		}
	}

	s.log.Info("message sent",
		zap.String("message_id", msg.ID),
		zap.String("sender", msg.Sender),
		zap.String("recipient", msg.Recipient),
	)
}
