package validation

import (
	"fmt"
	"reflect"
	"strings"

	"topic-quiz/internal/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator checks request DTOs and reports failures as
// domain.ValidationErrors keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator creates a validator with English messages and the custom
// notblank rule registered.
func NewValidator() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("notblank", isNotBlank); err != nil {
		return nil, fmt.Errorf("failed to register notblank validation: %w", err)
	}
	if err := validate.RegisterTranslation("notblank", trans, func(ut ut.Translator) error {
		return ut.Add("notblank", "{0} is required", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("notblank", fe.Field())
		return t
	}); err != nil {
		return nil, fmt.Errorf("failed to register notblank translation: %w", err)
	}

	return &Validator{validate: validate, trans: trans}, nil
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Struct validates s and returns nil or a non-empty domain.ValidationErrors.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ValidationErrors{domain.NewValidationError(err.Error())}
	}
	return v.toDomain(fieldErrs)
}

// Var validates a single value against tag and names it field in errors.
func (v *Validator) Var(field string, value interface{}, tag string) error {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ValidationErrors{domain.NewValidationError(err.Error())}
	}
	errs := v.toDomain(fieldErrs)
	for i := range errs {
		errs[i].Message = field + strings.TrimPrefix(errs[i].Message, errs[i].Field)
		errs[i].Field = field
	}
	return errs
}

func (v *Validator) toDomain(fieldErrs validator.ValidationErrors) domain.ValidationErrors {
	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		code := domain.CodeValidation
		switch fe.Tag() {
		case "required", "notblank":
			code = domain.CodeMissingField
		case "min", "max", "gte", "lte":
			code = domain.CodeOutOfRange
		}
		out = append(out, domain.ValidationError{
			Field:   fe.Field(),
			Code:    code,
			Message: fe.Translate(v.trans),
			Value:   fieldValue(fe),
		})
	}
	return out
}

func fieldValue(fe validator.FieldError) interface{} {
	switch fe.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fe.Value()
	}
	return nil
}
