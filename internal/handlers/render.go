package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"feedback_app/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

func mustParseTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

func userPath(username string) string {
	return "/users/" + url.PathEscape(username)
}

// render commits the session, consuming queued flashes, and writes the page.
func (h *Handler) render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = "Feedback"
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = fieldErrors{}
	}
	sess := currentSession(c)
	data["Flashes"] = sess.PopFlashes()
	data["CurrentUser"] = sess.Username

	h.commitSession(c)
	c.HTML(code, name, data)
}

func (h *Handler) redirect(c *gin.Context, location string) {
	h.commitSession(c)
	c.Redirect(http.StatusFound, location)
}

// deny queues msg for the next page and sends the visitor to location.
func (h *Handler) deny(c *gin.Context, msg, location string) {
	currentSession(c).AddFlash(msg)
	h.redirect(c, location)
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "error.html", gin.H{
		"Status":  http.StatusNotFound,
		"Message": "Page not found.",
	})
}

func (h *Handler) serverError(c *gin.Context, event string, err error, kv ...any) {
	if h.log != nil {
		h.log.Errorw(event, append([]any{"err", err}, kv...)...)
	}
	h.render(c, http.StatusInternalServerError, "error.html", gin.H{
		"Status":  http.StatusInternalServerError,
		"Message": "Something went wrong.",
	})
}

// denial describes how a guard failure is reported to the visitor.
type denial struct {
	msg      string
	location string
}

// fail maps a service error onto a response.
func (h *Handler) fail(c *gin.Context, err error, d denial, event string, kv ...any) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		h.notFound(c)
	case errors.Is(err, service.ErrAuthorizationDenied):
		if h.log != nil {
			h.log.Infow(event, append([]any{"err", err}, kv...)...)
		}
		h.deny(c, d.msg, d.location)
	default:
		h.serverError(c, event, err, kv...)
	}
}
