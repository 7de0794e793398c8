package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"forumpm/internal/domain"
)

func TestServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", domain.ErrMessageNotFound, http.StatusNotFound, "not_found"},
		{"wrong recipient", domain.ErrRecipientNotFound, http.StatusBadRequest, "wrong_recipient"},
		{"invalid message", domain.ErrInvalidMessage, http.StatusBadRequest, "invalid_message"},
		{"invalid state", domain.ErrInvalidState, http.StatusConflict, "invalid_state"},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			serviceError(rec, zap.NewNop(), tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.code)
		})
	}

	t.Run("wrapped errors still map", func(t *testing.T) {
		rec := httptest.NewRecorder()
		serviceError(rec, zap.NewNop(), errors.Join(errors.New("load draft"), domain.ErrInvalidState))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
