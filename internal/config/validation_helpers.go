package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	bserrors "github.com/alexisbeaulieu97/buttonsmith/pkg/errors"
)

// ValidateConfig checks every field of cfg against its tags.
func ValidateConfig(cfg *Config) error {
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError normalizes validator errors into buttonsmith validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fileFieldName(ve)
		return bserrors.NewValidationError(field, describe(ve), err)
	}

	return bserrors.NewValidationError("config", err.Error(), err)
}

// fileFieldName drops the root struct name from the namespace.
func fileFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "hexcolor":
		return "must be a hex colour such as #4f46e5"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "scale_step":
		return "must use at most two decimals"
	case "chroma_style":
		return "unknown highlight style"
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
