package request

import (
	"strings"

	"rental-booking/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules used by request DTOs to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("reservation_status", validReservationStatus); err != nil {
		return err
	}
	return v.RegisterValidation("notblank", notBlank)
}

func validReservationStatus(fl validator.FieldLevel) bool {
	_, err := reservation.ParseStatus(fl.Field().String())
	return err == nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
