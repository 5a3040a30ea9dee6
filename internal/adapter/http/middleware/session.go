package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/translator"
)

const sessionKey = "session"

type sessionState struct {
	store   ports.SessionStore
	session *domain.Session
}

// UserGetter resolves the account a session is logged in as.
type UserGetter interface {
	GetUser(ctx context.Context, id uint64) (domain.User, error)
}

// SessionMiddleware loads the visitor's session from store for the rest of the
// chain. A session whose user no longer exists is logged out.
func SessionMiddleware(store ports.SessionStore, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Load(c.Request)
		if err != nil {
			zap.L().Debug("discarding invalid session", zap.Error(err))
			// rewrite the cookie so the broken one is not sent again
			session.Logout()
		}

		if session.Authenticated() {
			_, err := users.GetUser(c.Request.Context(), session.UserID)
			switch {
			case errors.Is(err, domain.ErrUserNotFound):
				zap.L().Debug("logging out session of deleted user", zap.Uint64("user_id", session.UserID))
				session.Logout()
			case err != nil:
				zap.L().Error("failed to resolve session user", zap.Uint64("user_id", session.UserID), zap.Error(err))
			}
		}

		c.Set(sessionKey, &sessionState{store: store, session: session})
		c.Next()
	}
}

// GetSession returns the current session. Outside SessionMiddleware it is an
// anonymous, unsaved session.
func GetSession(c *gin.Context) *domain.Session {
	if state := getState(c); state != nil {
		return state.session
	}
	return &domain.Session{}
}

// SaveSession writes the session back if it changed. It must run before the
// response body is written.
func SaveSession(c *gin.Context) {
	state := getState(c)
	if state == nil || !state.session.Dirty() {
		return
	}
	if err := state.store.Save(c.Writer, state.session); err != nil {
		zap.L().Error("failed to save session", zap.Error(err))
	}
}

// Flash queues a translated one-time message for the next rendered page.
func Flash(c *gin.Context, level domain.FlashLevel, messageID string) {
	GetSession(c).AddFlash(level, translator.Localize(GetLang(c), messageID, nil))
}

// Redirect saves the session and answers with 302 Found.
func Redirect(c *gin.Context, location string) {
	SaveSession(c)
	c.Redirect(http.StatusFound, location)
}

func getState(c *gin.Context) *sessionState {
	value, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	state, _ := value.(*sessionState)
	return state
}
