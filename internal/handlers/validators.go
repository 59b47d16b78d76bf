package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/revlo/revlo_ledger/internal/utils"
)

// RegisterValidators installs the custom binding tags used by the request DTOs.
// It must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("iso4217", func(fl validator.FieldLevel) bool {
		return utils.IsValidCurrencyCode(strings.ToUpper(fl.Field().String()))
	})
}
