package handlers

import (
	"errors"
	"net/http"

	"feedback_app/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgUserNotFound     = "User not found"
	msgCannotDeleteUser = "You do not have permission to delete this user."
)

// @Summary      User page
// @Description  Shows the user's details and all of their feedback.
// @Tags         users
// @Produce      html
// @Param        username  path  string  true  "Username"
// @Success      200
// @Failure      302  "not logged in, or user not found"
// @Router       /users/{username} [get]
func (h *Handler) showUser(c *gin.Context) {
	sess := currentSession(c)
	if err := service.RequireLogin(sess); err != nil {
		h.deny(c, msgLoginRequired, "/login")
		return
	}

	ctx := c.Request.Context()
	username := c.Param("username")
	user, err := h.services.Authorization.GetUser(ctx, username)
	if errors.Is(err, service.ErrNotFound) {
		h.deny(c, msgUserNotFound, "/")
		return
	}
	if err != nil {
		h.serverError(c, "user_load_failed", err, "username", username)
		return
	}

	feedback, err := h.services.Feedback.ListByUsername(ctx, username)
	if err != nil {
		h.serverError(c, "feedback_list_failed", err, "username", username)
		return
	}

	h.render(c, http.StatusOK, "user.html", gin.H{
		"User":     user,
		"Feedback": feedback,
		"IsOwner":  sess.Username == user.Username,
	})
}

// @Summary      Delete user
// @Description  Deletes the user and all of their feedback, then logs out.
// @Tags         users
// @Param        username  path  string  true  "Username"
// @Success      302  "to /"
// @Failure      404
// @Router       /users/{username}/delete [post]
func (h *Handler) deleteUser(c *gin.Context) {
	sess := currentSession(c)
	username := c.Param("username")
	d := denial{msg: msgCannotDeleteUser, location: userPath(username)}

	if err := service.RequireOwner(sess, username); err != nil {
		h.deny(c, d.msg, d.location)
		return
	}

	ctx := c.Request.Context()
	if err := h.services.Authorization.DeleteUser(ctx, sess.Username, username); err != nil {
		h.fail(c, err, d, "user_delete_failed", "username", username)
		return
	}
	if h.log != nil {
		h.log.Infow("user_deleted", "username", username)
	}

	if err := h.services.Sessions.Destroy(ctx, sess); err != nil {
		h.serverError(c, "logout_failed", err, "username", username)
		return
	}
	h.redirect(c, "/")
}
