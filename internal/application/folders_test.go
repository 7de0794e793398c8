package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"forumpm/internal/domain"
)

func TestFolders(t *testing.T) {
	ctx := context.Background()

	t.Run("inbox queries recipient side with sent statuses", func(t *testing.T) {
		repo := new(MockRepo)
		svc := &Service{repo: repo, tx: &MockTransactor{}, log: zap.NewNop()}

		repo.On("FindByOwnerAndStatus", ctx, "bob", domain.RoleRecipient, sentStatuses).
			Return([]*domain.Message{}, nil).Once()

		_, err := svc.GetInboxForOwner(ctx, "bob")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("outbox queries sender side with sent statuses", func(t *testing.T) {
		repo := new(MockRepo)
		svc := &Service{repo: repo, tx: &MockTransactor{}, log: zap.NewNop()}

		repo.On("FindByOwnerAndStatus", ctx, "alice", domain.RoleSender, sentStatuses).
			Return([]*domain.Message{}, nil).Once()

		_, err := svc.GetOutboxForOwner(ctx, "alice")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("drafts query sender side with draft status", func(t *testing.T) {
		repo := new(MockRepo)
		svc := &Service{repo: repo, tx: &MockTransactor{}, log: zap.NewNop()}

		repo.On("FindByOwnerAndStatus", ctx, "alice", domain.RoleSender, []domain.Status{domain.StatusDraft}).
			Return([]*domain.Message{}, nil).Once()

		_, err := svc.GetDraftsForOwner(ctx, "alice")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestNewMessagesCount(t *testing.T) {
	ctx := context.Background()

	t.Run("miss falls back to store and fills cache", func(t *testing.T) {
		repo := new(MockRepo)
		unread := newFakeUnread()
		svc := &Service{repo: repo, tx: &MockTransactor{}, unread: unread, log: zap.NewNop()}

		repo.On("CountUnread", ctx, "bob").Return(int64(3), nil).Once()

		n, err := svc.NewMessagesCount(ctx, "bob")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.Equal(t, int64(3), unread.counts["bob"])

		// Second lookup is served from the cache.
		n, err = svc.NewMessagesCount(ctx, "bob")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), n)
		repo.AssertExpectations(t)
	})

	t.Run("nil cache goes straight to store", func(t *testing.T) {
		repo := new(MockRepo)
		svc := &Service{repo: repo, tx: &MockTransactor{}, log: zap.NewNop()}

		repo.On("CountUnread", ctx, "bob").Return(int64(1), nil).Once()

		n, err := svc.NewMessagesCount(ctx, "bob")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
