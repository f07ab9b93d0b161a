package handlers

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/easyfx/fx_backend/internal/apperrors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// RegisterCustomValidators hooks the currencycode rule into gin's binding
// validator and makes validation errors report json field names.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodePattern.MatchString(fl.Field().String())
	})
}

// bindingFieldErrors converts validator failures from request binding into
// the same field-scoped error shape the service validation pipeline emits.
func bindingFieldErrors(vErrs validator.ValidationErrors) apperrors.FieldErrors {
	out := make(apperrors.FieldErrors, 0, len(vErrs))
	for _, fe := range vErrs {
		out = append(out, apperrors.FieldError{
			Field:   fe.Field(),
			Message: bindingErrorMessage(fe),
		})
	}
	return out
}

func bindingErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "currencycode":
		return "must be a 3-letter currency code"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
