package components

import (
	"sport-rental/internal/domain/reservation"
	"sport-rental/internal/pkg/clock"
	"sport-rental/internal/pkg/config"
	"sport-rental/internal/usecase/commands"
	"sport-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) *reservation.Validator {
		return reservation.NewValidator(clk, cfg.App.Location())
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCustomerCommands,
		commands.NewEquipmentCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCustomerQueries,
		queries.NewEquipmentQueries,
		queries.NewReservationQueries,
	),
)
