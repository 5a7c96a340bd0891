package validator

import (
	"errors"
	"strings"
	"unicode"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"gtfield":  "{field} must be after {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"hexcolor": "{field} must be a hex color",
		"notblank": "{field} must not be blank",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	param := valErr.Param()
	if valErr.Tag() == "gtfield" {
		param = snakeCase(param)
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", param)

	return errStr
}

// fields returns one message per failing field keyed by its JSON name, and the first message.
func fields(err error) (string, map[string]string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error(), nil
	}

	first := ""
	result := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		msg := render(valErr)
		if first == "" {
			first = msg
		}

		if _, ok := result[valErr.Field()]; !ok {
			result[valErr.Field()] = msg
		}
	}

	return first, result
}

// snakeCase turns a Go field name referenced by a cross-field tag into its JSON form.
func snakeCase(name string) string {
	var builder strings.Builder

	for idx, r := range name {
		if unicode.IsUpper(r) {
			if idx > 0 {
				builder.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		builder.WriteRune(r)
	}

	return builder.String()
}
