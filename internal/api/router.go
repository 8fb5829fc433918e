package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pokearena/teambuilder/internal/api/accounts"
	"github.com/pokearena/teambuilder/internal/api/handler"
	"github.com/pokearena/teambuilder/internal/api/middleware"
	"github.com/pokearena/teambuilder/internal/infrastructure/memdb"
	"github.com/pokearena/teambuilder/internal/pkg/validation"
)

// Deps are the collaborators of the development backend.
type Deps struct {
	DB        *memdb.DB
	Accounts  *accounts.Service
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds the Echo instance with every route registered. The REST
// contract lives under /api; probes and metrics are at the root.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = validation.New()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(middleware.Metrics())

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Accounts)
	pokemonHandler := handler.NewPokemonHandler(d.DB)
	teamHandler := handler.NewTeamHandler(d.DB)
	profileHandler := handler.NewProfileHandler(d.DB)
	authMiddleware := middleware.Auth(d.JWTSecret)

	// --- Probes ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// --- Pokédex (public) ---
	api.GET("/pokemons", pokemonHandler.List)

	// --- Teams ---
	teams := api.Group("/teams", authMiddleware)
	teams.GET("", teamHandler.List)
	teams.GET("/community", teamHandler.Community)
	teams.POST("", teamHandler.Create)
	teams.PUT("/:id/add", teamHandler.AddPokemon)
	teams.DELETE("/:id", teamHandler.Delete)
	teams.DELETE("", teamHandler.DeleteAll)

	// --- Profile ---
	users := api.Group("/users", authMiddleware)
	users.GET("/profile", profileHandler.Get)
	users.PUT("/profile", profileHandler.Update)

	return e
}

// requestLogger logs one zerolog line per request. Handler errors are already
// rendered by the Metrics middleware, so the level follows the sent status.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			var ev *zerolog.Event
			switch {
			case v.Status >= http.StatusInternalServerError:
				ev = log.Error()
			case v.Status >= http.StatusBadRequest:
				ev = log.Warn()
			default:
				ev = log.Info()
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
