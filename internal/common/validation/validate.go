package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// tagErrors maps a failed validator tag to the code returned to clients.
var tagErrors = map[string]ErrorValidateResponse{
	"required": {Code: "MISSING_FIELD", Message: "field is missing"},
	"isodate":  {Code: "INVALID_DATE", Message: "field must be a date formatted as YYYY-MM-DD"},
	"gt":       {Code: "OUT_OF_RANGE", Message: "field is out of range"},
	"min":      {Code: "OUT_OF_RANGE", Message: "field is out of range"},
	"max":      {Code: "OUT_OF_RANGE", Message: "field is out of range"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	registerISODate(v)
	return v
}

// ValidateStruct returns a *multierror.Error holding one ErrorValidateResponse per failed field.
func ValidateStruct(toValidate any) error {
	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var errs *multierror.Error
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		errs = multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
		return errs.ErrorOrNil()
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, valErr := range valErrs {
			res, found := tagErrors[valErr.Tag()]
			if !found {
				res = ErrorValidateResponse{
					Code:    "UNKNOWN",
					Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
				}
			}
			res.Field = valErr.Field()
			errs = multierror.Append(errs, res)
		}
	}
	return errs.ErrorOrNil()
}

func registerISODate(v *validator.Validate) {
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		if input == "" {
			return true
		}
		_, err := civil.ParseDate(input)
		return err == nil
	})
}
