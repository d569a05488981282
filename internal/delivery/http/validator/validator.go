// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strconv"
	"strings"

	domainerrors "bonsai/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator reporting JSON field names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	// RegisterValidation only fails on an empty tag or a nil func.
	_ = validate.RegisterValidation("maxbytes", maxBytes)

	return &Validator{validate: validate}
}

// Validate checks i against its struct tags. Failures become ErrValidationFailed
// with a message naming the first offending field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "failed to validate request")
	}

	first := fieldErrs[0]

	return domainerrors.ErrValidationFailed.
		WithMessage(fieldMessage(first)).
		WithDetails(fieldErrs.Error())
}

func fieldMessage(fe validator.FieldError) string {
	field := `"` + fe.Field() + `"`

	switch fe.Tag() {
	case "required":
		return field + " is required."
	case "email":
		return field + " must be a valid email address."
	case "alphanum":
		return field + " must contain only letters and digits."
	case "uuid4", "uuid":
		return field + " must be a valid UUID."
	case "min":
		return field + " must be at least " + fe.Param() + " characters long."
	case "max":
		return field + " must be at most " + fe.Param() + " characters long."
	case "maxbytes":
		return field + " must be at most " + fe.Param() + " bytes long."
	default:
		return field + " is invalid."
	}
}

// maxBytes checks the encoded length of a string, unlike max which counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{field.Tag.Get("json"), field.Tag.Get("param")} {
		name := strings.SplitN(tag, ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}
