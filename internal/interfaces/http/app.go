package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Juridico-api/pkg/logger"
)

// localOrigin orígenes aceptados cuando no se configura CORS_ORIGINS.
var localOrigin = regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1)(:\d+)?$`)

// AppConfig opciones del servidor HTTP.
type AppConfig struct {
	Name        string
	CORSOrigins []string
	Log         *logger.Logger
	Metrics     *Metrics
}

// NewApp arma la aplicación Fiber: middlewares comunes, /health, /metrics y las rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(corsMiddleware(cfg.CORSOrigins))
	app.Use(RequestID())
	app.Use(AccessLog(cfg.Log))
	if cfg.Metrics != nil {
		app.Use(cfg.Metrics.Middleware())
		app.Get("/metrics", cfg.Metrics.Handler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	Router(app, deps)
	return app
}

func corsMiddleware(origins []string) fiber.Handler {
	cfg := cors.Config{
		AllowMethods:  strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions}, ","),
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + HeaderRequestID,
		ExposeHeaders: HeaderRequestID + ", Content-Disposition",
	}
	if len(origins) > 0 {
		cfg.AllowOrigins = strings.Join(origins, ",")
	} else {
		// sin comodín: el resto de puertos locales lo resuelve AllowOriginsFunc
		cfg.AllowOrigins = "http://localhost,http://127.0.0.1"
		cfg.AllowOriginsFunc = localOrigin.MatchString
	}
	return cors.New(cfg)
}
