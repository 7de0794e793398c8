package http

import (
	"context"
	"net/http"
)

type contextKey string

// UserKey holds the authenticated username for the request. The value is
// injected by the forum front, which owns authentication; this service
// only trusts the header it forwards.
const UserKey contextKey = "user"

const userHeader = "X-Forum-User"

func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := r.Header.Get(userHeader)
		if user == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing user identity")
			return
		}
		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requester(r *http.Request) string {
	return r.Context().Value(UserKey).(string)
}
