package notify

import (
	"context"

	"forumpm/internal/domain"
)

// Notifier announces a delivered message to the recipient's side. Dispatch
// is fire-and-forget from the messaging core: a failure is logged by the
// caller and never rolls back the send.
type Notifier interface {
	MessageSent(ctx context.Context, msg *domain.Message) error
}
