package dto

import (
	"reflect"

	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the custom tags used by request DTOs:
// "language" accepts a supported language tag and "decimal_positive" a decimal > 0.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseLanguage(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	return v.RegisterValidation("decimal_positive", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})
}
