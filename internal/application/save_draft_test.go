package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"forumpm/internal/domain"
)

func TestSaveDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id creates a draft", func(t *testing.T) {
		repo := new(MockRepo)
		svc := &Service{repo: repo, tx: &MockTransactor{}, log: zap.NewNop()}

		repo.On("InsertMessage", ctx, mock.Anything, mock.Anything).Return(nil).Once()

		msg, err := svc.SaveDraft(ctx, "alice", "", SendCommand{
			Title:     "WIP",
			Body:      "half a thought",
			Recipient: "b0b",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusDraft, msg.Status)
		assert.NotEmpty(t, msg.ID)
		assert.Nil(t, msg.SentAt)
		repo.AssertExpectations(t)
	})

	t.Run("unresolvable recipient is still saveable", func(t *testing.T) {
		repo := new(MockRepo)
		svc := &Service{repo: repo, tx: &MockTransactor{}, log: zap.NewNop()}

		repo.On("InsertMessage", ctx, mock.Anything, mock.Anything).Return(nil).Once()

		msg, err := svc.SaveDraft(ctx, "alice", "", SendCommand{Recipient: "no-such-user"})
		assert.NoError(t, err)
		assert.Equal(t, "no-such-user", msg.Recipient)
	})

	t.Run("existing draft keeps id and status", func(t *testing.T) {
		repo := new(MockRepo)
		svc := &Service{repo: repo, tx: &MockTransactor{}, log: zap.NewNop()}

		existing, _ := domain.NewDraft("pm-1", "alice", "old", "old", "bob", time.Now().UTC())
		repo.On("GetMessageForUpdate", ctx, mock.Anything, "pm-1").Return(existing, nil).Once()
		repo.On("UpdateMessage", ctx, mock.Anything, existing).Return(nil).Once()

		msg, err := svc.SaveDraft(ctx, "alice", "pm-1", SendCommand{
			Title:     "new title",
			Body:      "new body",
			Recipient: "carol",
		})
		assert.NoError(t, err)
		assert.Equal(t, "pm-1", msg.ID)
		assert.Equal(t, domain.StatusDraft, msg.Status)
		assert.Equal(t, "new title", msg.Title)
		assert.Equal(t, "carol", msg.Recipient)
		repo.AssertExpectations(t)
	})

	t.Run("saving someone else's draft is not found", func(t *testing.T) {
		repo := new(MockRepo)
		svc := &Service{repo: repo, tx: &MockTransactor{}, log: zap.NewNop()}

		existing, _ := domain.NewDraft("pm-1", "alice", "old", "old", "bob", time.Now().UTC())
		repo.On("GetMessageForUpdate", ctx, mock.Anything, "pm-1").Return(existing, nil).Once()

		_, err := svc.SaveDraft(ctx, "mallory", "pm-1", SendCommand{Title: "x"})
		assert.ErrorIs(t, err, domain.ErrMessageNotFound)
		repo.AssertNotCalled(t, "UpdateMessage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("saving a sent message is invalid state", func(t *testing.T) {
		repo := new(MockRepo)
		svc := &Service{repo: repo, tx: &MockTransactor{}, log: zap.NewNop()}

		sent, _ := domain.NewDraft("pm-1", "alice", "Hi", "there", "bob", time.Now().UTC())
		assert.NoError(t, sent.Send("bob", time.Now().UTC()))
		repo.On("GetMessageForUpdate", ctx, mock.Anything, "pm-1").Return(sent, nil).Once()

		_, err := svc.SaveDraft(ctx, "alice", "pm-1", SendCommand{Title: "x", Body: "y"})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}
