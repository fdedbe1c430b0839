// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"hobbyexplorer/internal/delivery/api/request"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request payloads.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds a validator that reports fields by their JSON names and looks
// through request.Field wrappers.
func New() *CustomValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterCustomTypeFunc(fieldValue,
		request.Field[string]{},
		request.Field[int]{},
		request.Field[bool]{},
	)

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. Every failure is a 422 ValidationError
// whose details list the offending fields.
func (cv *CustomValidator) Validate(i any) error {
	var problems []string
	if checker, ok := i.(request.NullChecker); ok {
		for _, name := range checker.NullFields() {
			problems = append(problems, name+": must not be null")
		}
	}

	if err := cv.validate.Struct(i); err != nil {
		var fieldErrs playground.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.WithStack(err)
		}
		for _, fieldErr := range fieldErrs {
			problems = append(problems, describe(fieldErr))
		}
	}

	if len(problems) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

func describe(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + ": field required"
	case "min":
		if fieldErr.Param() == "1" {
			return fieldErr.Field() + ": must not be empty"
		}

		return fmt.Sprintf("%s: must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s: failed on %s", fieldErr.Field(), fieldErr.Tag())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

// fieldValue exposes a present field as a pointer to its value. Absent and
// null fields validate as a nil pointer, so omitnil skips them.
func fieldValue(v reflect.Value) any {
	switch field := v.Interface().(type) {
	case request.Field[string]:
		return field.Ptr()
	case request.Field[int]:
		return field.Ptr()
	case request.Field[bool]:
		return field.Ptr()
	}

	return nil
}
