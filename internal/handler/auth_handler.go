package handler

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/amriz26/BudgetpalCsc642/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

type loginRequest struct {
	Name string `json:"name"`
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// loginHandler handles POST /v1/login: the name-capture gate. A non-empty
// name gets a fresh session token.
func loginHandler(sessions *session.Manager, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess, err := sessions.Login(r.Context(), strings.TrimSpace(req.Name))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{Token: sess.Token, Name: sess.UserName})
	}
}

// logoutHandler handles POST /v1/logout, dropping the session and all of
// its in-memory state.
func logoutHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r.Context())
		sessions.Logout(sess.Token)
		w.WriteHeader(http.StatusNoContent)
	}
}

// requireSession resolves the bearer token to a live session and stashes
// it in the request context. Missing or expired tokens get 401.
func requireSession(sessions *session.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing session token")
				return
			}

			sess, ok := sessions.Get(token)
			if !ok {
				writeError(w, http.StatusUnauthorized, "session expired or unknown")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.Header.Get("X-Session-Token")
}

func sessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey).(*session.Session)
	return sess
}
