// Package validation binds request data into typed request structs and
// validates them.
//
// Rules live in `validate` struct tags on the request types; failures are
// turned into a 400 *errs.HTTPError with one FieldError per field.
package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/deppfellow/catalog/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, usually by running validator.Struct on the receiver.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds path params, query params (GET/DELETE) and the
// body into payload, then validates it.
//
// Every failure is returned as a 400 *errs.HTTPError, except echo errors
// with another status (415 for an unsupported Content-Type), which are
// returned unchanged.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(c, err)
	}

	if err := payload.Validate(); err != nil {
		fieldErrors := extractValidationError(err)
		if fieldErrors == nil {
			return errs.ValidationError(err)
		}
		return errs.NewBadRequestError("Validation failed", true, nil, fieldErrors)
	}

	return nil
}

func bindError(c echo.Context, err error) error {
	// BindingError embeds *echo.HTTPError, so it must be checked first.
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return errs.NewBadRequestError("Invalid request parameters", true, nil, []errs.FieldError{{
			Field: bindingErr.Field,
			Error: "has an invalid value",
		}})
	}

	// The default binder reports a bad path or query value as the raw
	// strconv error, without the parameter name.
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return errs.NewBadRequestError("Invalid request parameters", true, nil, []errs.FieldError{{
			Field: paramWithValue(c, numErr.Num),
			Error: "must be a number",
		}})
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errs.NewBadRequestError("Invalid request body", true, nil, []errs.FieldError{{
			Field: typeErr.Field,
			Error: fmt.Sprintf("must be of type %s", jsonTypeName(typeErr.Type)),
		}})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return errs.NewBadRequestError("Malformed JSON body", true, nil, nil)
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errs.NewBadRequestError("Malformed JSON body", true, nil, nil)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Code != http.StatusBadRequest {
		return echoErr
	}

	return errs.NewBadRequestError("Invalid request", false, nil, nil)
}

// paramWithValue returns the name of the path or query parameter holding
// value, or "" when none does.
func paramWithValue(c echo.Context, value string) string {
	values := c.ParamValues()
	for i, name := range c.ParamNames() {
		if i < len(values) && values[i] == value {
			return name
		}
	}
	for name, vs := range c.QueryParams() {
		for _, v := range vs {
			if v == value {
				return name
			}
		}
	}
	return ""
}

// jsonTypeName names a Go type the way a JSON client thinks about it.
func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.String()
	}
}

// extractValidationError converts validator errors into field errors.
// It returns nil for errors that do not come from validator.
func extractValidationError(err error) []errs.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fe.Field(),
			Error: msg,
		})
	}

	return fieldErrors
}
