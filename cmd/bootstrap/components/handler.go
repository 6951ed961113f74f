package components

import (
	"sport-rental/internal/handler"
	"sport-rental/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCustomerHandler,
		api.NewEquipmentHandler,
		api.NewReservationHandler,
		api.NewReportHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
