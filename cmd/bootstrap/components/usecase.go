package components

import (
	"github.com/javier-f-ramos/clasifica2/internal/handler/api"
	"github.com/javier-f-ramos/clasifica2/internal/infra/payment"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/clock"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/config"
	"github.com/javier-f-ramos/clasifica2/internal/usecase"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/commands"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config) *payment.StripeGateway {
			return payment.NewStripeGateway(cfg.Stripe)
		},
		fx.As(new(commands.CheckoutGateway)),
		fx.As(new(api.WebhookVerifier)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewListingCommands,
		commands.NewPromotionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewCategoryQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
