package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// formErrorKey holds errors not tied to a single field.
const formErrorKey = "_form"

var registerValidatorsOnce sync.Once

// registerValidators adds the custom tags used by the form structs to gin's
// validator engine.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	})
}

type registerForm struct {
	Username  string `form:"username" binding:"required,notblank,max=20,excludes=/"`
	Password  string `form:"password" binding:"required,notblank"`
	Email     string `form:"email" binding:"required,email,max=50"`
	FirstName string `form:"first_name" binding:"required,notblank,max=30"`
	LastName  string `form:"last_name" binding:"required,notblank,max=30"`
}

type loginForm struct {
	Username string `form:"username" binding:"required,max=20"`
	Password string `form:"password" binding:"required"`
}

type feedbackForm struct {
	Title   string `form:"title" binding:"required,notblank,max=100"`
	Content string `form:"content" binding:"required,notblank"`
}

// fieldErrors maps a form field name to the message shown next to it.
type fieldErrors map[string]string

// bindForm binds the posted form into dst. It returns nil when every rule passes.
func bindForm(c *gin.Context, dst any) fieldErrors {
	err := c.ShouldBind(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fieldErrors{formErrorKey: "Malformed form submission."}
	}
	return translateErrors(verrs, reflect.TypeOf(dst).Elem())
}

// serviceFieldErrors turns a service validation error into per-field
// messages for form, matching struct fields by name. Returns nil when err
// carries no field detail.
func serviceFieldErrors(err error, form any) fieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	return translateErrors(verrs, reflect.TypeOf(form))
}

func translateErrors(verrs validator.ValidationErrors, typ reflect.Type) fieldErrors {
	out := fieldErrors{}
	for _, fe := range verrs {
		name := fe.Field()
		if sf, ok := typ.FieldByName(fe.StructField()); ok {
			if tag := sf.Tag.Get("form"); tag != "" {
				name = tag
			}
		}
		if _, seen := out[name]; !seen {
			out[name] = fieldMessage(fe)
		}
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "excludes":
		return fmt.Sprintf("Must not contain %q.", fe.Param())
	default:
		return "Invalid value."
	}
}
