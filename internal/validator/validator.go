package validator

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator wraps a validator instance with English message translations.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New creates a Validator with English translations registered.
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &Validator{
		validate:   validate,
		translator: translator,
	}, nil
}

// Struct validates s and returns per-field translated messages, keyed by the
// struct field name. A nil map means s is valid.
func (v *Validator) Struct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	messages := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages[fieldError.Field()] = fieldError.Translate(v.translator)
	}

	return messages
}
