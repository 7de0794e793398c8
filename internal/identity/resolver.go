package identity

import (
	"context"
	"database/sql"
	"strings"

	"forumpm/internal/domain"
)

// Resolver maps a recipient reference as typed by a user to a canonical,
// addressable account reference. Resolution happens at send time, never
// at draft-save time.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// UserTableResolver resolves recipients against the forum's users table.
type UserTableResolver struct {
	DB *sql.DB
}

func (r *UserTableResolver) Resolve(ctx context.Context, ref string) (string, error) {
	var username string
	err := r.DB.QueryRowContext(ctx, `
		SELECT username
		FROM users
		WHERE lower(username) = lower($1)
	`, strings.TrimSpace(ref)).Scan(&username)

	if err == sql.ErrNoRows {
		return "", domain.ErrRecipientNotFound
	}
	if err != nil {
		return "", err
	}
	return username, nil
}
