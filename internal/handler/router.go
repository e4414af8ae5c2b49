package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/javier-f-ramos/clasifica2/internal/handler/api"
	"github.com/javier-f-ramos/clasifica2/internal/handler/middleware"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	listingHandler *api.ListingHandler,
	categoryHandler *api.CategoryHandler,
	promotionHandler *api.PromotionHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, listingHandler, categoryHandler, promotionHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	listingHandler *api.ListingHandler,
	categoryHandler *api.CategoryHandler,
	promotionHandler *api.PromotionHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Webhooks bypass auth; the signature check inside the handler is the
	// authentication.
	engine.POST("/webhooks/stripe", webhookHandler.HandleStripe)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		categories := apiGroup.Group("/categories")
		{
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: categoryHandler.List},
				{Method: http.MethodGet, Path: "/:slug", Handler: categoryHandler.GetBySlug},
			})
		}

		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: listingHandler.Search},
				{Method: http.MethodGet, Path: "/premium", Handler: listingHandler.HomePremium},
				{Method: http.MethodGet, Path: "/:id", Handler: listingHandler.Get},
				{Method: http.MethodGet, Path: "/:id/images", Handler: listingHandler.Images},
			})

			listingsAuthed := listings.Group("")
			listingsAuthed.Use(authMiddleware.RequireAuth())
			addRoutes(listingsAuthed, []route{
				{Method: http.MethodPost, Path: "", Handler: listingHandler.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: listingHandler.Mine},
				{Method: http.MethodPut, Path: "/:id", Handler: listingHandler.Update},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: listingHandler.ChangeStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: listingHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/images", Handler: listingHandler.AddImage},
			})
		}

		promotions := apiGroup.Group("/promotions")
		{
			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "/plans", Handler: promotionHandler.Plans},
			})

			promotionsAuthed := promotions.Group("")
			promotionsAuthed.Use(authMiddleware.RequireAuth())
			addRoutes(promotionsAuthed, []route{
				{Method: http.MethodPost, Path: "/checkout", Handler: promotionHandler.CreateCheckout},
				{Method: http.MethodGet, Path: "/payments", Handler: promotionHandler.Payments},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
