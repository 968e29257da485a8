package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"partner-portal/internal/handler/api"
	"partner-portal/internal/handler/middleware"
	"partner-portal/internal/pkg/config"
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
	earningsHandler *api.EarningsHandler,
	payoutHandler *api.PayoutHandler,
	partnerHandler *api.PartnerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, earningsHandler, payoutHandler, partnerHandler, authMiddleware)
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
	earningsHandler *api.EarningsHandler,
	payoutHandler *api.PayoutHandler,
	partnerHandler *api.PartnerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
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

		partners := apiGroup.Group("/partners")
		partners.Use(authMiddleware.RequireAuth())
		{
			addRoutes(partners, []route{
				{Method: http.MethodGet, Path: "/me", Handler: partnerHandler.Profile},
			})
		}

		earnings := apiGroup.Group("/earnings")
		earnings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(earnings, []route{
				{Method: http.MethodGet, Path: "", Handler: earningsHandler.Statement},
				{Method: http.MethodGet, Path: "/events/:id", Handler: earningsHandler.EventBalance},
			})
		}

		payouts := apiGroup.Group("/payouts")
		payouts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payouts, []route{
				{Method: http.MethodGet, Path: "", Handler: payoutHandler.History},
				{Method: http.MethodPost, Path: "/withdrawals", Handler: payoutHandler.InitiateWithdrawal},
				{Method: http.MethodPost, Path: "/withdrawals/confirm", Handler: payoutHandler.ConfirmWithdrawal},
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
