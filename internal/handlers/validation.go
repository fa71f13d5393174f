package handlers

import (
	"fmt"
	"sync"

	"github.com/Bugian/unit-conversion-api/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs to gin's validator.
func registerValidators() error {
	var err error
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("unittype", validateUnitType)
	})
	return err
}

// validateUnitType accepts names present in the unit table, e.g. "mass".
func validateUnitType(fl validator.FieldLevel) bool {
	return domain.IsUnitType(fl.Field().String())
}
