package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"feedback_app/internal/models"
	"feedback_app/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgCannotAddFeedback    = "You must be logged in to add feedback."
	msgCannotEditFeedback   = "You do not have permission to edit this feedback."
	msgCannotDeleteFeedback = "You do not have permission to delete this feedback."
)

// feedbackID parses the :id path parameter. Non-numeric ids render 404.
func (h *Handler) feedbackID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.notFound(c)
		return 0, false
	}
	return id, true
}

// @Summary      Add feedback form
// @Tags         feedback
// @Produce      html
// @Param        username  path  string  true  "Owner username"
// @Success      200
// @Failure      302  "not the owner"
// @Router       /users/{username}/feedback/add [get]
func (h *Handler) showAddFeedback(c *gin.Context) {
	username := c.Param("username")
	if err := service.RequireOwner(currentSession(c), username); err != nil {
		h.deny(c, msgCannotAddFeedback, "/login")
		return
	}
	h.render(c, http.StatusOK, "feedback_form.html", gin.H{
		"Heading": "Add feedback",
		"Action":  userPath(username) + "/feedback/add",
		"Form":    feedbackForm{},
	})
}

// @Summary      Add feedback
// @Tags         feedback
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  path      string  true  "Owner username"
// @Param        title     formData  string  true  "Title (max 100)"
// @Param        content   formData  string  true  "Content"
// @Success      302  "to /users/{username}"
// @Failure      422  "form re-rendered with field errors"
// @Router       /users/{username}/feedback/add [post]
func (h *Handler) addFeedback(c *gin.Context) {
	sess := currentSession(c)
	username := c.Param("username")
	d := denial{msg: msgCannotAddFeedback, location: "/login"}
	if err := service.RequireOwner(sess, username); err != nil {
		h.deny(c, d.msg, d.location)
		return
	}

	action := userPath(username) + "/feedback/add"
	var form feedbackForm
	if errs := bindForm(c, &form); errs != nil {
		h.renderFeedbackForm(c, "Add feedback", action, form, errs)
		return
	}

	id, err := h.services.Feedback.Create(c.Request.Context(), sess.Username, username, form.Title, form.Content)
	switch {
	case errors.Is(err, service.ErrValidation):
		h.renderFeedbackForm(c, "Add feedback", action, form, feedbackValidationErrors(err))
		return
	case err != nil:
		h.fail(c, err, d, "feedback_create_failed", "username", username)
		return
	}
	if h.log != nil {
		h.log.Infow("feedback_created", "id", id, "username", username)
	}
	h.redirect(c, userPath(username))
}

// renderFeedbackForm re-renders the add/edit form with field errors.
func (h *Handler) renderFeedbackForm(c *gin.Context, heading, action string, form feedbackForm, errs fieldErrors) {
	h.render(c, http.StatusUnprocessableEntity, "feedback_form.html", gin.H{
		"Heading": heading,
		"Action":  action,
		"Form":    form,
		"Errors":  errs,
	})
}

// feedbackValidationErrors describes a service validation failure on the
// feedback form. Both fields are rejected when blank after trimming.
func feedbackValidationErrors(err error) fieldErrors {
	if errs := serviceFieldErrors(err, feedbackForm{}); len(errs) > 0 {
		return errs
	}
	return fieldErrors{formErrorKey: "Title and content are required."}
}

// loadOwnedFeedback resolves :id and checks the session owns it, writing the
// response itself when it does not.
func (h *Handler) loadOwnedFeedback(c *gin.Context, deniedMsg string) (*models.Feedback, bool) {
	id, ok := h.feedbackID(c)
	if !ok {
		return nil, false
	}

	fb, err := h.services.Feedback.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, denial{msg: deniedMsg, location: "/login"}, "feedback_load_failed", "id", id)
		return nil, false
	}
	if err := service.RequireOwner(currentSession(c), fb.Username); err != nil {
		h.deny(c, deniedMsg, "/login")
		return nil, false
	}
	return fb, true
}

// @Summary      Edit feedback form
// @Tags         feedback
// @Produce      html
// @Param        id  path  int  true  "Feedback id"
// @Success      200
// @Failure      302  "not the owner"
// @Failure      404
// @Router       /feedback/{id}/update [get]
func (h *Handler) showUpdateFeedback(c *gin.Context) {
	fb, ok := h.loadOwnedFeedback(c, msgCannotEditFeedback)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, "feedback_form.html", gin.H{
		"Heading": "Edit feedback",
		"Action":  "/feedback/" + strconv.FormatInt(fb.ID, 10) + "/update",
		"Form":    feedbackForm{Title: fb.Title, Content: fb.Content},
	})
}

// @Summary      Update feedback
// @Tags         feedback
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id       path      int     true  "Feedback id"
// @Param        title    formData  string  true  "Title (max 100)"
// @Param        content  formData  string  true  "Content"
// @Success      302  "to /users/{owner}"
// @Failure      404
// @Failure      422  "form re-rendered with field errors"
// @Router       /feedback/{id}/update [post]
func (h *Handler) updateFeedback(c *gin.Context) {
	fb, ok := h.loadOwnedFeedback(c, msgCannotEditFeedback)
	if !ok {
		return
	}

	action := "/feedback/" + strconv.FormatInt(fb.ID, 10) + "/update"
	var form feedbackForm
	if errs := bindForm(c, &form); errs != nil {
		h.renderFeedbackForm(c, "Edit feedback", action, form, errs)
		return
	}

	d := denial{msg: msgCannotEditFeedback, location: "/login"}
	sess := currentSession(c)
	err := h.services.Feedback.Update(c.Request.Context(), sess.Username, fb.ID, form.Title, form.Content)
	switch {
	case errors.Is(err, service.ErrValidation):
		h.renderFeedbackForm(c, "Edit feedback", action, form, feedbackValidationErrors(err))
		return
	case err != nil:
		h.fail(c, err, d, "feedback_update_failed", "id", fb.ID)
		return
	}
	h.redirect(c, userPath(fb.Username))
}

// @Summary      Delete feedback
// @Tags         feedback
// @Param        id  path  int  true  "Feedback id"
// @Success      302  "to /users/{owner}"
// @Failure      404
// @Router       /feedback/{id}/delete [post]
func (h *Handler) deleteFeedback(c *gin.Context) {
	fb, ok := h.loadOwnedFeedback(c, msgCannotDeleteFeedback)
	if !ok {
		return
	}

	d := denial{msg: msgCannotDeleteFeedback, location: "/login"}
	if err := h.services.Feedback.Delete(c.Request.Context(), currentSession(c).Username, fb.ID); err != nil {
		h.fail(c, err, d, "feedback_delete_failed", "id", fb.ID)
		return
	}
	if h.log != nil {
		h.log.Infow("feedback_deleted", "id", fb.ID, "username", fb.Username)
	}
	h.redirect(c, userPath(fb.Username))
}
