package dto

import (
	"reflect"
	"strings"

	"credit-application/internal/domain/customer"
	"credit-application/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// maxMoney bounds NUMERIC(15, 2): thirteen integer digits.
var maxMoney = decimal.New(1, 13)

func isMoney(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(2)) && d.Abs().LessThan(maxMoney)
}

func init() {
	// Money goes over the wire as a JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimals compare as float64 so gt/gte work on money fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return customer.IsValidCPF(fl.Field().String())
	})
	// The custom type func above hands rules a float64, so money reads the
	// decimal straight off the parent struct.
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		field := reflect.Indirect(fl.Parent()).FieldByName(fl.StructFieldName())
		for field.Kind() == reflect.Pointer {
			if field.IsNil() {
				return true
			}
			field = field.Elem()
		}
		d, ok := field.Interface().(decimal.Decimal)
		return !ok || isMoney(d)
	})

	return v
}

// validateStruct runs the declared rules and returns one violation per
// failing field, or nil.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("body", err.Error())
	}

	violations := make([]apperrors.FieldViolation, 0, len(validationErrors))
	for _, e := range validationErrors {
		violations = append(violations, apperrors.FieldViolation{
			Field:   e.Field(),
			Message: getValidationMessage(e),
		})
	}
	return apperrors.NewValidationErrors(violations)
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "cpf":
		return "Invalid CPF"
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "lte":
		return "Must be less than or equal to " + e.Param()
	case "max":
		return "Must be at most " + e.Param() + " characters"
	case "money":
		return "Must have at most 13 integer digits and 2 decimal places"
	case "datetime":
		return "Must be a date in YYYY-MM-DD format"
	default:
		return "Invalid value"
	}
}
