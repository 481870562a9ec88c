package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			errors[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	} else if err != nil { // Non-validator errors
		errors["error"] = err.Error()
	}
	return errors
}

// Message flattens a binding error into a single string for the error body.
func Message(err error) string {
	parsed := ParseError(err)
	parts := make([]string, 0, len(parsed))
	for _, msg := range parsed {
		parts = append(parts, msg)
	}
	sort.Strings(parts)
	return "Invalid input: " + strings.Join(parts, "; ")
}
