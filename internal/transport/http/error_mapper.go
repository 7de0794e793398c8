package http

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"forumpm/internal/domain"
)

// serviceError translates the messaging core's failure taxonomy into HTTP
// answers. The recoverable outcomes carry a stable code the form layer
// can key field messages off; anything else is a storage failure and
// stays opaque.
func serviceError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrMessageNotFound):
		writeError(w, http.StatusNotFound, "not_found", "message not found")
	case errors.Is(err, domain.ErrRecipientNotFound):
		writeError(w, http.StatusBadRequest, "wrong_recipient", "recipient could not be resolved")
	case errors.Is(err, domain.ErrInvalidMessage):
		writeError(w, http.StatusBadRequest, "invalid_message", "title and body must not be empty")
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusConflict, "invalid_state", "message is not in a state that allows this")
	default:
		log.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "an unexpected error occurred")
	}
}
