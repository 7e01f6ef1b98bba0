package handlers

import (
	"net/http"

	"feedback_app/internal/models"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// sessionMiddleware resolves the session cookie and stores the session in the
// gin context. Storage failures degrade to an anonymous session.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, _ := c.Cookie(h.opts.CookieName)

	sess, err := h.services.Sessions.Load(c.Request.Context(), token)
	if err != nil && h.log != nil {
		h.log.Errorw("session_load_failed", "err", err)
	}
	if sess == nil {
		sess = &models.Session{}
	}

	c.Set(sessionContextKey, sess)
	c.Next()
}

func currentSession(c *gin.Context) *models.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(*models.Session); ok {
			return sess
		}
	}
	sess := &models.Session{}
	c.Set(sessionContextKey, sess)
	return sess
}

// commitSession persists the session and refreshes (or clears) the cookie.
// Must run before anything is written to the response.
func (h *Handler) commitSession(c *gin.Context) {
	sess := currentSession(c)
	token, err := h.services.Sessions.Save(c.Request.Context(), sess)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("session_save_failed", "err", err, "username", sess.Username)
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	if token == "" {
		if _, err := c.Cookie(h.opts.CookieName); err == nil {
			c.SetCookie(h.opts.CookieName, "", -1, "/", "", h.opts.Secure, true)
		}
		return
	}
	maxAge := int(h.services.Sessions.TTL().Seconds())
	c.SetCookie(h.opts.CookieName, token, maxAge, "/", "", h.opts.Secure, true)
}
