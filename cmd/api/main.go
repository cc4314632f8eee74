package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/swaggo/swag"

	"github.com/jhoicas/Juridico-api/docs"
	"github.com/jhoicas/Juridico-api/internal/application/audit"
	"github.com/jhoicas/Juridico-api/internal/application/auth"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Juridico-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Juridico-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Juridico-api/internal/interfaces/http"
	"github.com/jhoicas/Juridico-api/pkg/config"
	"github.com/jhoicas/Juridico-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("token_mode", cfg.Auth.TokenMode).
		Bool("seeds", cfg.Seeds.Enabled).
		Msg("iniciando aplicación")
	if cfg.Auth.TokenMode == config.TokenModeDev || cfg.Auth.DevTokenEnabled {
		log.Warn().Msg("credenciales de desarrollo habilitadas; no usar en producción")
	}

	ctx := context.Background()
	pool, err := postgres.WaitForDatabase(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := postgres.NewStore(pool)
	deps := usecase.Deps{
		Store:    store,
		Tx:       postgres.NewTxRunner(pool),
		Recorder: audit.NewRecorder(reg).WithLogger(log),
		Log:      log,
	}

	authUC := auth.NewAuthUseCase(store, auth.NewCodec(cfg.Auth), log)

	// PDF: ficha de la causa
	pdfGenerator := infrapdf.NewCaseSheetGenerator()

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         log,
		Metrics:     httpRouter.NewMetrics(reg, reg),
	}, httpRouter.RouterDeps{
		AuthUC:       authUC,
		OfficeUC:     usecase.NewOfficeUseCase(deps),
		LawyerUC:     usecase.NewLawyerUseCase(deps),
		ClientUC:     usecase.NewClientUseCase(deps),
		CaseUC:       usecase.NewCaseUseCase(deps, pdfGenerator),
		SpecialtyUC:  usecase.NewSpecialtyUseCase(deps),
		ProfileUC:    usecase.NewProfileUseCase(deps),
		PermissionUC: usecase.NewPermissionUseCase(deps),
		UserUC:       usecase.NewUserUseCase(deps),
		ParameterUC:  usecase.NewParameterUseCase(deps),
		AuditUC:      usecase.NewAuditUseCase(store.Audit()),
		SeedUC:       usecase.NewSeedUseCase(deps),
		SeedsEnabled: cfg.Seeds.Enabled,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Juridico API",
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
