package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/pokernight/server/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

const (
	sessionCookie = "pokernight_session"
	sessionTTL    = 24 * time.Hour
)

// SessionManager issues and validates the signed session cookie. The cookie
// itself has no max-age, so it dies with the browser session; the token inside
// expires after sessionTTL.
type SessionManager struct {
	jwtService JWTServiceInterface
}

func NewSessionManager(jwtService JWTServiceInterface) *SessionManager {
	return &SessionManager{jwtService: jwtService}
}

// Grant signs a token bound to userID and sets it as the session cookie.
func (sm *SessionManager) Grant(w http.ResponseWriter, userID int) error {
	token, err := sm.jwtService.GenerateJWT(userID, time.Now().Add(sessionTTL))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Revoke clears the session cookie. It succeeds whether or not a session exists.
func (sm *SessionManager) Revoke(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (sm *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := sm.jwtService.ValidateToken(cookie.Value)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
