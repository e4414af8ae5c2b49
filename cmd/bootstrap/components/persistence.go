package components

import (
	"github.com/javier-f-ramos/clasifica2/internal/infra/readstore"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"
	"github.com/javier-f-ramos/clasifica2/internal/infra/uow"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"

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
		// Listing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ListingReadQueries)),
		),
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
		// Category
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CategoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewCategoryReadStore,
			fx.As(new(queries.CategoryReadStore)),
		),
		// PaymentLog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentLogReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentLogReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds the write-side repositories per transaction
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
