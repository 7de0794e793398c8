package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"forumpm/internal/domain"
)

type Repository struct {
	DB *sql.DB
}

type queryable interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (r *Repository) getter(tx *sql.Tx) queryable {
	if tx != nil {
		return tx
	}
	return r.DB
}

const messageColumns = `
	id, sender, recipient, title, body, status,
	created_at, sent_at, deleted_by_sender, deleted_by_recipient
`

func (r *Repository) InsertMessage(
	ctx context.Context,
	tx *sql.Tx,
	msg *domain.Message,
) error {
	q := r.getter(tx)
	_, err := q.ExecContext(ctx, `
		INSERT INTO private_messages (
			id, sender, recipient, title, body, status,
			created_at, sent_at, deleted_by_sender, deleted_by_recipient
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		msg.ID,
		msg.Sender,
		msg.Recipient,
		msg.Title,
		msg.Body,
		string(msg.Status),
		msg.CreatedAt,
		msg.SentAt,
		msg.DeletedBySender,
		msg.DeletedByRecipient,
	)
	return err
}

func (r *Repository) UpdateMessage(
	ctx context.Context,
	tx *sql.Tx,
	msg *domain.Message,
) error {
	q := r.getter(tx)
	res, err := q.ExecContext(ctx, `
		UPDATE private_messages
		SET recipient = $2,
		    title = $3,
		    body = $4,
		    status = $5,
		    sent_at = $6,
		    deleted_by_sender = $7,
		    deleted_by_recipient = $8
		WHERE id = $1
	`,
		msg.ID,
		msg.Recipient,
		msg.Title,
		msg.Body,
		string(msg.Status),
		msg.SentAt,
		msg.DeletedBySender,
		msg.DeletedByRecipient,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *Repository) GetMessage(
	ctx context.Context,
	id string,
) (*domain.Message, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+messageColumns+`
		FROM private_messages
		WHERE id = $1
	`, id)
	return scanMessage(row)
}

func (r *Repository) GetMessageForUpdate(
	ctx context.Context,
	tx *sql.Tx,
	id string,
) (*domain.Message, error) {
	row := r.getter(tx).QueryRowContext(ctx, `
		SELECT `+messageColumns+`
		FROM private_messages
		WHERE id = $1
		FOR UPDATE
	`, id)
	return scanMessage(row)
}

func (r *Repository) FindByOwnerAndStatus(
	ctx context.Context,
	owner string,
	role domain.Role,
	statuses []domain.Status,
) ([]*domain.Message, error) {

	var q string
	switch role {
	case domain.RoleRecipient:
		q = `
			SELECT ` + messageColumns + `
			FROM private_messages
			WHERE recipient = $1 AND status = ANY($2) AND NOT deleted_by_recipient
			ORDER BY created_at DESC
		`
	default:
		q = `
			SELECT ` + messageColumns + `
			FROM private_messages
			WHERE sender = $1 AND status = ANY($2) AND NOT deleted_by_sender
			ORDER BY created_at DESC
		`
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}

	rows, err := r.DB.QueryContext(ctx, q, owner, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *Repository) CountUnread(
	ctx context.Context,
	recipient string,
) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM private_messages
		WHERE recipient = $1 AND status = $2 AND NOT deleted_by_recipient
	`, recipient, string(domain.StatusSentUnread)).Scan(&n)
	return n, err
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanMessage(row scannable) (*domain.Message, error) {
	var (
		msg    domain.Message
		status string
		sentAt sql.NullTime
	)

	err := row.Scan(
		&msg.ID,
		&msg.Sender,
		&msg.Recipient,
		&msg.Title,
		&msg.Body,
		&status,
		&msg.CreatedAt,
		&sentAt,
		&msg.DeletedBySender,
		&msg.DeletedByRecipient,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}

	msg.Status = domain.Status(status)
	if sentAt.Valid {
		t := sentAt.Time
		msg.SentAt = &t
	}
	return &msg, nil
}
