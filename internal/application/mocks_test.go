package application

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stretchr/testify/mock"

	"forumpm/internal/domain"
)

// MockRepo is a mock for the repository.Repository interface
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) InsertMessage(ctx context.Context, tx *sql.Tx, msg *domain.Message) error {
	return m.Called(ctx, tx, msg).Error(0)
}

func (m *MockRepo) UpdateMessage(ctx context.Context, tx *sql.Tx, msg *domain.Message) error {
	return m.Called(ctx, tx, msg).Error(0)
}

func (m *MockRepo) GetMessage(ctx context.Context, id string) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockRepo) GetMessageForUpdate(ctx context.Context, tx *sql.Tx, id string) (*domain.Message, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockRepo) FindByOwnerAndStatus(ctx context.Context, owner string, role domain.Role, statuses []domain.Status) ([]*domain.Message, error) {
	args := m.Called(ctx, owner, role, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *MockRepo) CountUnread(ctx context.Context, recipient string) (int64, error) {
	args := m.Called(ctx, recipient)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactor runs the closure directly; atomicity is the real
// manager's concern, not the use cases'.
type MockTransactor struct{}

func (m *MockTransactor) WithTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return fn(ctx, nil)
}

// fakeResolver resolves only the usernames it was given.
type fakeResolver struct {
	known map[string]string
}

func (f *fakeResolver) Resolve(ctx context.Context, ref string) (string, error) {
	if canonical, ok := f.known[ref]; ok {
		return canonical, nil
	}
	return "", domain.ErrRecipientNotFound
}

// fakeNotifier records dispatched messages and can be told to fail.
type fakeNotifier struct {
	sent []*domain.Message
	err  error
}

func (f *fakeNotifier) MessageSent(ctx context.Context, msg *domain.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

// fakeUnread is an in-memory UnreadCounter.
type fakeUnread struct {
	counts      map[string]int64
	invalidated []string
}

func newFakeUnread() *fakeUnread {
	return &fakeUnread{counts: make(map[string]int64)}
}

func (f *fakeUnread) Get(ctx context.Context, owner string) (int64, error) {
	n, ok := f.counts[owner]
	if !ok {
		return 0, errors.New("cache miss")
	}
	return n, nil
}

func (f *fakeUnread) Set(ctx context.Context, owner string, n int64) error {
	f.counts[owner] = n
	return nil
}

func (f *fakeUnread) Invalidate(ctx context.Context, owner string) error {
	delete(f.counts, owner)
	f.invalidated = append(f.invalidated, owner)
	return nil
}
