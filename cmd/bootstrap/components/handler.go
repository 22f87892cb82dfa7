package components

import (
	"rental-booking/internal/handler"
	"rental-booking/internal/handler/api"
	"rental-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPropertyHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewSiteConfigHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	property *api.PropertyHandler,
	reservation *api.ReservationHandler,
	payment *api.PaymentHandler,
	siteConfig *api.SiteConfigHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Property:    property,
		Reservation: reservation,
		Payment:     payment,
		SiteConfig:  siteConfig,
	}
}
