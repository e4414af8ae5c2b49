package components

import (
	"github.com/javier-f-ramos/clasifica2/internal/handler"
	"github.com/javier-f-ramos/clasifica2/internal/handler/api"
	"github.com/javier-f-ramos/clasifica2/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewCategoryHandler,
		api.NewPromotionHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
