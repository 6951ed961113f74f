package components

import (
	"sport-rental/internal/infra/readstore"
	"sport-rental/internal/infra/repository"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/usecase/commands"
	"sport-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Customer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CustomerReadQueries)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		// Equipment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EquipmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewEquipmentReadStore,
			fx.As(new(queries.EquipmentReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Customer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.CustomerWriteQueries)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		// Equipment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.EquipmentWriteQueries)),
		),
		fx.Annotate(
			repository.NewEquipmentRepository,
			fx.As(new(commands.EquipmentRepository)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ReservationWriteQueries)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
