package helpers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the validate tags of a config struct and reports every
// failing field in one error.
func Validate(config any) Error {
	err := validate.Struct(config)
	if err == nil {
		return NilError
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return Wrap(err)
	}

	details := []string{}
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", e.Field()))
		case "min":
			details = append(details, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		case "max":
			details = append(details, fmt.Sprintf("%s must be at most %s", e.Field(), e.Param()))
		default:
			details = append(details, fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag()))
		}
	}
	return Errorf("invalid config: %v", strings.Join(details, "; "))
}
