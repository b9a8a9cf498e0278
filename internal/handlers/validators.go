package handlers

import (
	"sync"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding rules used by the request DTOs:
//
//	yearmonth  YYYY-MM or YYYY-MM-DD
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("yearmonth", validateYearMonth)
		}
	})
}

func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := domain.ParseInvoiceMonth(fl.Field().String())
	return err == nil
}
