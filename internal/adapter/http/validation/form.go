package validation

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/pkg/translator"
)

const (
	MsgFieldRequired    = "fieldRequired"
	MsgFieldTooLong     = "fieldTooLong"
	MsgFieldTooShort    = "fieldTooShort"
	MsgFieldInvalid     = "fieldInvalid"
	MsgPasswordMismatch = "passwordMismatch"
	MsgInvalidUsername  = "invalidUsername"
	MsgUsernameTaken    = "usernameTaken"
	MsgInvalidChoice    = "invalidChoice"
	MsgInvalidLogin     = "invalidLogin"

	// FormField keys errors that do not belong to a single input.
	FormField = "__all__"
)

// FieldErrors maps a form field name to its translated messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// NewFieldError returns errors holding one translated message for field.
func NewFieldError(c *gin.Context, field, messageID string) FieldErrors {
	errs := FieldErrors{}
	errs.Add(field, translator.Localize(middleware.GetLang(c), messageID, nil))
	return errs
}

// BindForm fills obj from the POST body with surrounding whitespace trimmed,
// then validates it. The returned FieldErrors is nil when the form is valid.
func BindForm(c *gin.Context, obj any) FieldErrors {
	lang := middleware.GetLang(c)
	if err := c.Request.ParseForm(); err != nil {
		errs := FieldErrors{}
		errs.Add(FormField, translator.Localize(lang, MsgFieldInvalid, nil))
		return errs
	}

	values := make(map[string][]string, len(c.Request.PostForm))
	for key, vs := range c.Request.PostForm {
		trimmed := make([]string, 0, len(vs))
		for _, v := range vs {
			trimmed = append(trimmed, strings.TrimSpace(v))
		}
		values[key] = trimmed
	}

	if err := binding.MapFormWithTag(obj, values, "form"); err != nil {
		errs := FieldErrors{}
		errs.Add(FormField, translator.Localize(lang, MsgFieldInvalid, nil))
		return errs
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return TranslateErrors(err, lang)
	}
	return nil
}

// TranslateErrors turns validator errors into per-field messages.
func TranslateErrors(err error, lang string) FieldErrors {
	errs := FieldErrors{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs.Add(FormField, translator.Localize(lang, MsgFieldInvalid, nil))
		return errs
	}

	for _, fe := range validationErrors {
		errs.Add(fieldName(fe), translator.Localize(lang, messageID(fe), map[string]any{
			"Max": fe.Param(),
			"Min": fe.Param(),
		}))
	}
	return errs
}

func fieldName(fe validator.FieldError) string {
	// labels[0] reports against the "labels" input
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	return name
}

func messageID(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgFieldRequired
	case "max":
		return MsgFieldTooLong
	case "min":
		return MsgFieldTooShort
	case "eqfield":
		return MsgPasswordMismatch
	case "username":
		return MsgInvalidUsername
	case "numeric":
		return MsgInvalidChoice
	default:
		return MsgFieldInvalid
	}
}
