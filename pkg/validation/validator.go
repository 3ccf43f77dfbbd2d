package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/devconnector-api/pkg/response"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for common validations.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("pwd", "min=6") // password minimum length
	}
}

// Items converts binding errors into the itemized {errors:[{msg}]} entries the
// API returns for 400s.
func Items(err error) []response.ErrorItem {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return response.Items("invalid json payload")
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]response.ErrorItem, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, response.ErrorItem{Msg: fieldMessage(fe)})
		}
		return out
	}

	return response.Items("invalid payload")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "min":
		if isNumberKind(fe.Kind()) {
			return field + " must be at least " + fe.Param()
		}
		return field + " must be at least " + fe.Param() + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return field + " must be at most " + fe.Param()
		}
		return field + " must be at most " + fe.Param() + " characters long"
	case "oneof":
		return field + " must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "boolean":
		return field + " must be a boolean value"
	case "pwd":
		return field + " must be at least 6 characters long"
	default:
		return field + " is invalid"
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
