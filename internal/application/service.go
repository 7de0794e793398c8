package application

import (
	"context"

	"go.uber.org/zap"

	"forumpm/internal/identity"
	"forumpm/internal/notify"
	"forumpm/internal/repository"
	"forumpm/internal/tx"
)

// UnreadCounter caches per-user unread inbox counts. Optional; a nil
// counter means every lookup goes to the store.
type UnreadCounter interface {
	Get(ctx context.Context, owner string) (int64, error)
	Set(ctx context.Context, owner string, n int64) error
	Invalidate(ctx context.Context, owner string) error
}

// Service orchestrates the private messaging workflow. It is stateless
// and request-scoped: the only shared mutable resource behind it is the
// message store, guarded by the transactor.
type Service struct {
	repo     repository.Repository
	tx       tx.Transactor
	resolver identity.Resolver
	notifier notify.Notifier
	unread   UnreadCounter
	log      *zap.Logger
}

func New(
	repo repository.Repository,
	transactor tx.Transactor,
	resolver identity.Resolver,
	notifier notify.Notifier,
	unread UnreadCounter,
	log *zap.Logger,
) *Service {
	return &Service{
		repo:     repo,
		tx:       transactor,
		resolver: resolver,
		notifier: notifier,
		unread:   unread,
		log:      log,
	}
}
