package domain

import "errors"

var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrInvalidState      = errors.New("invalid message state")
	ErrInvalidMessage    = errors.New("invalid message")
)
