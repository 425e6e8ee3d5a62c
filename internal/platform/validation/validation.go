package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/currexo/currency_catalog_app/internal/core/domain"
)

// unitCode validates that a bound string names a catalog currency.
func unitCode(fl validator.FieldLevel) bool {
	_, ok := domain.CatalogUnit(domain.UnitCode(fl.Field().String()))
	return ok
}

// RegisterValidators installs the application's custom binding validators on
// gin's validator engine. Call once at startup.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("unitcode", unitCode)
}
