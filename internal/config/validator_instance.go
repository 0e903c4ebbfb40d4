package config

import (
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their file keys, e.g. defaults.hover_scale.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(fld.Name)
			}
			return name
		})

		_ = v.RegisterValidation("scale_step", func(fl validator.FieldLevel) bool {
			hundredths := fl.Field().Float() * 100
			return math.Abs(hundredths-math.Round(hundredths)) < 1e-6
		})

		_ = v.RegisterValidation("chroma_style", func(fl validator.FieldLevel) bool {
			_, ok := styles.Registry[strings.ToLower(fl.Field().String())]
			return ok
		})

		_ = v.RegisterValidation("log_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if strings.TrimSpace(path) == "" || strings.Contains(path, "\x00") {
				return false
			}
			return filepath.Base(path) != "." && !strings.HasSuffix(path, string(filepath.Separator))
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
