package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/smart-asset/smart-asset-api/internal/application/auth"
	"github.com/smart-asset/smart-asset-api/internal/application/billing"
	"github.com/smart-asset/smart-asset-api/internal/application/request"
	"github.com/smart-asset/smart-asset-api/internal/application/usecase"
	infrapdf "github.com/smart-asset/smart-asset-api/internal/infrastructure/pdf"
	"github.com/smart-asset/smart-asset-api/internal/infrastructure/postgres"
	infrastripe "github.com/smart-asset/smart-asset-api/internal/infrastructure/stripe"
	httpRouter "github.com/smart-asset/smart-asset-api/internal/interfaces/http"
	"github.com/smart-asset/smart-asset-api/pkg/config"
	"github.com/smart-asset/smart-asset-api/pkg/logger"
)

// swaggerSpecPath ruta del contrato OpenAPI versionado en el repo,
// relativa al directorio de trabajo del binario.
const swaggerSpecPath = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	requestRepo := postgres.NewRequestRepository(pool)
	noticeRepo := postgres.NewNoticeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tokenUC := auth.NewTokenUseCase(auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, txRunner)
	assetUC := usecase.NewAssetUseCase(assetRepo)
	noticeUC := usecase.NewNoticeUseCase(noticeRepo)
	requestUC := request.NewUseCase(txRunner, assetRepo, requestRepo, request.Policy{
		RestoreOnReject: cfg.Lifecycle.RestoreOnReject,
	})

	paymentClient := infrastripe.NewPaymentClient(cfg.Stripe.SecretKey)
	paymentUC := billing.NewPaymentUseCase(paymentClient)

	// PDF: acta de entrega de una solicitud aprobada
	pdfGenerator := infrapdf.NewMarotoHandoverGenerator()
	handoverUC := billing.NewHandoverPDFUseCase(requestRepo, assetRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware
	// hace panic si el archivo no existe, así que solo se registra cuando
	// el binario corre junto a docs/swagger.json.
	if _, err := os.Stat(swaggerSpecPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpecPath,
			Path:     "docs",
			Title:    "Smart-Asset API",
		}))
	} else {
		log.Warn().Str("path", swaggerSpecPath).Msg("swagger.json no encontrado, UI de documentación deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TokenUC:    tokenUC,
		UserUC:     userUC,
		AssetUC:    assetUC,
		NoticeUC:   noticeUC,
		RequestUC:  requestUC,
		PaymentUC:  paymentUC,
		HandoverUC: handoverUC,
		JWTSecret:  cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
