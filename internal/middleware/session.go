package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-clinic/internal/session"
)

const (
	ContextSession    = "session"
	SessionCookieName = "tf_session"
)

// SessionMiddleware binds every request to a page session, starting a new one
// when the cookie is missing or its session has been torn down.
func SessionMiddleware(store *session.Store, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookieName)

		sess, created := store.GetOrCreate(id)
		if created {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// CurrentSession returns the session bound by SessionMiddleware.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
