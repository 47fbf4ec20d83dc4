package handler

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// requestValidator validates request payloads and renders field errors as
// readable English messages.
type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newRequestValidator() *requestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(err)
	}

	return &requestValidator{validate: validate, trans: trans}
}

// check validates v and returns the message for the first failing field.
func (rv *requestValidator) check(v any) (string, bool) {
	err := rv.validate.Struct(v)
	if err == nil {
		return "", true
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return fieldErrors[0].Translate(rv.trans), false
	}

	return "invalid request", false
}
