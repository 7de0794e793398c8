package application

import (
	"context"

	"forumpm/internal/domain"
)

// GetMessage fetches a single message for display. A requester that is
// neither the visible-side sender nor recipient gets NotFound, the same
// answer as for a missing id, so ids cannot be probed.
func (s *Service) GetMessage(ctx context.Context, requester, id string) (*domain.Message, error) {
	msg, err := s.repo.GetMessage(ctx, id)
	if err != nil {
		return nil, err
	}
	if !msg.VisibleTo(requester) {
		return nil, domain.ErrMessageNotFound
	}
	return msg, nil
}
