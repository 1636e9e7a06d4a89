// @title           SurgiShop Scanner API
// @version         1.0
// @description     Validación de lotes vencidos, resolución GS1 y condiciones de recepción para el ERP.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/surgishop-scanner/docs"
	"github.com/jhoicas/surgishop-scanner/internal/application/condition"
	"github.com/jhoicas/surgishop-scanner/internal/application/hooks"
	"github.com/jhoicas/surgishop-scanner/internal/application/ports"
	"github.com/jhoicas/surgishop-scanner/internal/application/scanner"
	"github.com/jhoicas/surgishop-scanner/internal/application/settings"
	"github.com/jhoicas/surgishop-scanner/internal/application/stock"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	inframetrics "github.com/jhoicas/surgishop-scanner/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/surgishop-scanner/internal/infrastructure/pdf"
	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/surgishop-scanner/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/surgishop-scanner/internal/interfaces/http"
	"github.com/jhoicas/surgishop-scanner/pkg/config"
	"github.com/jhoicas/surgishop-scanner/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	settingsRepo := postgres.NewSettingsRepository(pool)
	conditionRepo := postgres.NewConditionSettingsRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	serialRepo := postgres.NewSerialNoRepository(pool)
	fieldRepo := postgres.NewCustomFieldRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Invalidación de caché entre procesos (opcional)
	var invalidator ports.CacheInvalidator
	var subscriber *infraredis.Subscriber
	if cfg.Redis.Enabled() {
		client, err := infraredis.NewClient(ctx, infraredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Channel:  cfg.Redis.Channel,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		invalidator = infraredis.NewPublisher(client, cfg.Redis.Channel)
		subscriber = infraredis.NewSubscriber(client, cfg.Redis.Channel, log.Component("cache"))
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: la caché de configuración solo se invalida en este proceso")
	}

	metrics := inframetrics.NewPrometheus(true)

	resolver := settings.NewResolver(settingsRepo, invalidator, cfg.Settings.CacheTTL, log.Component("settings"))
	if subscriber != nil {
		subscriber.Handle(entity.SettingsDocType, resolver.Invalidate)
		go func() {
			if err := subscriber.Run(ctx, nil); err != nil {
				log.Error().Err(err).Msg("suscriptor de invalidaciones finalizado")
			}
		}()
	}

	resolveBatchUC := scanner.NewResolveBatchUseCase(resolver, itemRepo, txRunner, metrics, log.Component("scanner"))
	validator := stock.NewDocumentValidator(resolver, batchRepo, serialRepo, metrics, log.Component("stock"))
	propagator := condition.NewPropagator(txRunner, metrics, log.Component("condition"))
	dispatcher := hooks.NewDispatcher(validator, propagator, log.Component("hooks"))
	optionsSvc := condition.NewOptionsService(conditionRepo, fieldRepo, invalidator, log.Component("condition"))

	// PDF: hoja de códigos de disparo del escáner
	triggerSheetUC := settings.NewTriggerSheetUseCase(resolver, infrapdf.NewTriggerSheetGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "SurgiShop Scanner API",
		}))
	} else if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado; UI deshabilitada")
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Scanner:        resolveBatchUC,
		Dispatcher:     dispatcher,
		Settings:       resolver,
		TriggerSheet:   triggerSheetUC,
		Conditions:     optionsSvc,
		MetricsHandler: metrics.Handler(),
		JWTSecret:      cfg.JWT.Secret,
		Log:            log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
