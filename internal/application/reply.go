package application

import (
	"context"

	"forumpm/internal/domain"
)

// ReplyTo derives an unsaved draft answering the given message: recipient
// pre-filled with the original sender, title prefixed once with "Re: ",
// body empty. Nothing is persisted; the value only pre-populates the form.
func (s *Service) ReplyTo(ctx context.Context, requester, id string) (*domain.Message, error) {
	original, err := s.GetMessage(ctx, requester, id)
	if err != nil {
		return nil, err
	}
	return domain.Reply(original), nil
}

// QuoteOf is ReplyTo with the original body block-quoted into the draft.
func (s *Service) QuoteOf(ctx context.Context, requester, id string) (*domain.Message, error) {
	original, err := s.GetMessage(ctx, requester, id)
	if err != nil {
		return nil, err
	}
	return domain.Quote(original), nil
}
