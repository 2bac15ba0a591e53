package validator

import (
	"errors"
	"fmt"
	"strings"

	validators "github.com/go-playground/validator/v10"
)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func
func New() Validator {
	v := validators.New()
	return &validator{
		validator: v,
	}
}

// ValidateStruct func - validates struct tags and flattens field errors into
// one readable message
func (v *validator) ValidateStruct(inf interface{}) error {
	err := v.validator.Struct(inf)
	if err == nil {
		return nil
	}

	var fieldErrors validators.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}
