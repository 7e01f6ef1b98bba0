package handlers

import (
	"errors"
	"net/http"

	"feedback_app/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgLoginRequired = "You must be logged in to view this page"
	msgBadLogin      = "Incorrect username/password"
	msgUsernameTaken = "Username is already taken."

	msgInvalidRegistration = "Please check the form and try again."
)

// @Summary      Registration form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /register [get]
func (h *Handler) showRegister(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{"Form": registerForm{}})
}

// @Summary      Register
// @Description  Creates the user and logs them in.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username    formData  string  true  "Username (max 20)"
// @Param        password    formData  string  true  "Password"
// @Param        email       formData  string  true  "Email (max 50)"
// @Param        first_name  formData  string  true  "First name (max 30)"
// @Param        last_name   formData  string  true  "Last name (max 30)"
// @Success      302  "to /users/{username}"
// @Failure      422  "form re-rendered with field errors"
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var form registerForm
	if errs := bindForm(c, &form); errs != nil {
		h.renderRegister(c, form, errs)
		return
	}

	user, err := h.services.Authorization.Register(c.Request.Context(), service.RegisterParams{
		Username:  form.Username,
		Password:  form.Password,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	switch {
	case errors.Is(err, service.ErrDuplicateUser):
		h.renderRegister(c, form, fieldErrors{"username": msgUsernameTaken})
		return
	case errors.Is(err, service.ErrValidation):
		errs := serviceFieldErrors(err, registerForm{})
		if len(errs) == 0 {
			errs = fieldErrors{formErrorKey: msgInvalidRegistration}
		}
		h.renderRegister(c, form, errs)
		return
	case err != nil:
		h.serverError(c, "register_failed", err, "username", form.Username)
		return
	}

	if err := h.services.Sessions.Start(c.Request.Context(), currentSession(c), user.Username); err != nil {
		h.serverError(c, "session_start_failed", err, "username", user.Username)
		return
	}
	if h.log != nil {
		h.log.Infow("user_registered", "username", user.Username)
	}
	h.redirect(c, userPath(user.Username))
}

func (h *Handler) renderRegister(c *gin.Context, form registerForm, errs fieldErrors) {
	form.Password = ""
	h.render(c, http.StatusUnprocessableEntity, "register.html", gin.H{"Form": form, "Errors": errs})
}

// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /login [get]
func (h *Handler) showLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Form": loginForm{}})
}

// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302  "to /secret"
// @Failure      401  "bad credentials, form re-rendered with a flash"
// @Failure      422  "form re-rendered with field errors"
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var form loginForm
	if errs := bindForm(c, &form); errs != nil {
		form.Password = ""
		h.render(c, http.StatusUnprocessableEntity, "login.html", gin.H{"Form": form, "Errors": errs})
		return
	}

	user, err := h.services.Authorization.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, service.ErrAuthenticationFailed) {
			h.serverError(c, "login_failed", err, "username", form.Username)
			return
		}
		if h.log != nil {
			h.log.Infow("login_rejected", "username", form.Username)
		}
		currentSession(c).AddFlash(msgBadLogin)
		form.Password = ""
		h.render(c, http.StatusUnauthorized, "login.html", gin.H{"Form": form})
		return
	}

	if err := h.services.Sessions.Start(c.Request.Context(), currentSession(c), user.Username); err != nil {
		h.serverError(c, "session_start_failed", err, "username", user.Username)
		return
	}
	h.redirect(c, "/secret")
}

// @Summary      Landing page after login
// @Description  Forwards a logged-in visitor to their own page.
// @Tags         auth
// @Success      302
// @Router       /secret [get]
func (h *Handler) secret(c *gin.Context) {
	sess := currentSession(c)
	if err := service.RequireLogin(sess); err != nil {
		h.deny(c, msgLoginRequired, "/login")
		return
	}
	h.redirect(c, userPath(sess.Username))
}

// @Summary      Logout
// @Tags         auth
// @Success      302  "to /"
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	sess := currentSession(c)
	username := sess.Username
	if err := h.services.Sessions.Destroy(c.Request.Context(), sess); err != nil {
		h.serverError(c, "logout_failed", err, "username", username)
		return
	}
	h.redirect(c, "/")
}
