package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resort-booking/internal/handler/api"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/pkg/config"
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
	logger *slog.Logger,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	rateLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, catalogHandler, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(middleware.MethodNotAllowed())

	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	rateLimiter *middleware.RateLimiter,
) {
	engine.GET("/health", catalogHandler.Health)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		limited := []gin.HandlerFunc{rateLimiter.Middleware()}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/availability", Handler: bookingHandler.CheckAvailability, Mw: limited},
			{Method: http.MethodPost, Path: "/booking", Handler: bookingHandler.SubmitBooking, Mw: limited},
			{Method: http.MethodPost, Path: "/quote", Handler: bookingHandler.SubmitQuote, Mw: limited},
			{Method: http.MethodPost, Path: "/contact", Handler: bookingHandler.SubmitContact, Mw: limited},

			{Method: http.MethodGet, Path: "/rooms", Handler: catalogHandler.ListRooms},
			{Method: http.MethodGet, Path: "/rooms/:id", Handler: catalogHandler.GetRoom},
			{Method: http.MethodGet, Path: "/room-types", Handler: catalogHandler.RoomTypes},
			{Method: http.MethodGet, Path: "/rates", Handler: catalogHandler.Rates},
			{Method: http.MethodGet, Path: "/health", Handler: catalogHandler.Health},
		})
	}
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
