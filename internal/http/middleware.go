package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

const sessionCookieName = "gg_session"

// SessionMiddleware resolves the caller's session id from the
// X-Session-ID header or the session cookie, minting a fresh one when
// neither is present. The session id scopes cart and identity state.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get("X-Session-ID")
		if sessionID == "" {
			if c, err := r.Cookie(sessionCookieName); err == nil {
				sessionID = c.Value
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

// RecoverMiddleware is the top-level boundary: a panic anywhere below
// becomes a generic apology instead of a dropped connection.
func RecoverMiddleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithField("panic", rec).Error("request handler panicked")
					respondError(w, http.StatusInternalServerError, "internal_error",
						"Une erreur est survenue. Veuillez recharger la page ou revenir à l'accueil.")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
