package utils

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

// ValidateStruct aplica as tags `validate` e traduz as falhas para os tipos de
// erro do domínio: campos ausentes viram ErrMissingParameter, os demais
// ErrInvalidParameter.
func ValidateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidParameter, err)
	}

	missing := make([]string, 0)
	invalid := make([]string, 0)
	for _, fieldErr := range validationErrs {
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Field())
			continue
		}
		invalid = append(invalid, fieldErr.Field())
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingParameter, strings.Join(missing, ", "))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidParameter, strings.Join(invalid, ", "))
}
