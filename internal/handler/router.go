package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parking-allocator/internal/domain/user"
	"parking-allocator/internal/handler/api"
	"parking-allocator/internal/handler/middleware"
	"parking-allocator/internal/pkg/config"
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
	requestsHandler *api.RequestsHandler,
	reservationsHandler *api.ReservationsHandler,
	configurationHandler *api.ConfigurationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, requestsHandler, reservationsHandler, configurationHandler, authMiddleware)
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
	requestsHandler *api.RequestsHandler,
	reservationsHandler *api.ReservationsHandler,
	configurationHandler *api.ConfigurationHandler,
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
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodGet, Path: "", Handler: requestsHandler.GetOwn},
				{Method: http.MethodPost, Path: "", Handler: requestsHandler.Submit},
				{Method: http.MethodDelete, Path: "/:date", Handler: requestsHandler.Cancel},
				{Method: http.MethodPost, Path: "/:date/stay-interrupted", Handler: requestsHandler.StayInterrupted},
			})
		}

		summary := apiGroup.Group("/summary")
		summary.Use(authMiddleware.RequireAuth())
		{
			addRoutes(summary, []route{
				{Method: http.MethodGet, Path: "", Handler: requestsHandler.Summary},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationsHandler.GetRange},
				{
					Method: http.MethodPut, Path: "", Handler: reservationsHandler.Replace,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleTeamLeader)},
				},
			})
		}

		configuration := apiGroup.Group("/configuration")
		configuration.Use(authMiddleware.RequireAuth())
		{
			addRoutes(configuration, []route{
				{Method: http.MethodGet, Path: "", Handler: configurationHandler.Get},
				{
					Method: http.MethodPut, Path: "", Handler: configurationHandler.Put,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
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
		"status": "ok",
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
