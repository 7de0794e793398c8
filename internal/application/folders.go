package application

import (
	"context"

	"forumpm/internal/domain"
)

var sentStatuses = []domain.Status{domain.StatusSentUnread, domain.StatusSentRead}

// GetInboxForOwner lists delivered messages addressed to owner, most
// recent first, skipping those the owner deleted.
func (s *Service) GetInboxForOwner(ctx context.Context, owner string) ([]*domain.Message, error) {
	return s.repo.FindByOwnerAndStatus(ctx, owner, domain.RoleRecipient, sentStatuses)
}

// GetOutboxForOwner lists messages the owner has sent.
func (s *Service) GetOutboxForOwner(ctx context.Context, owner string) ([]*domain.Message, error) {
	return s.repo.FindByOwnerAndStatus(ctx, owner, domain.RoleSender, sentStatuses)
}

// GetDraftsForOwner lists the owner's unsent drafts.
func (s *Service) GetDraftsForOwner(ctx context.Context, owner string) ([]*domain.Message, error) {
	return s.repo.FindByOwnerAndStatus(ctx, owner, domain.RoleSender, []domain.Status{domain.StatusDraft})
}

// NewMessagesCount returns the owner's unread inbox count, preferring the
// cache and falling back to the store on a miss.
func (s *Service) NewMessagesCount(ctx context.Context, owner string) (int64, error) {
	if s.unread != nil {
		if n, err := s.unread.Get(ctx, owner); err == nil {
			return n, nil
		}
	}

	n, err := s.repo.CountUnread(ctx, owner)
	if err != nil {
		return 0, err
	}

	if s.unread != nil {
		_ = s.unread.Set(ctx, owner, n)
	}
	return n, nil
}
