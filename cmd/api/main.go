package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/escritoriopro/backoffice-api/internal/application/audit"
	"github.com/escritoriopro/backoffice-api/internal/application/auth"
	"github.com/escritoriopro/backoffice-api/internal/application/billing"
	"github.com/escritoriopro/backoffice-api/internal/application/stock"
	"github.com/escritoriopro/backoffice-api/internal/application/usecase"
	"github.com/escritoriopro/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/escritoriopro/backoffice-api/internal/interfaces/http"
	"github.com/escritoriopro/backoffice-api/pkg/config"
	"github.com/escritoriopro/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuracao: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicacao")

	if err := postgres.Migrate(cfg.DB.ConnectionString(), "migrations"); err != nil {
		log.Fatal().Err(err).Msg("migracoes do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexao ao PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	accountRepo := postgres.NewClientAccountRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	financialRepo := postgres.NewFinancialRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	activityLogRepo := postgres.NewActivityLogRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportingRepo := postgres.NewReportingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := audit.NewDBRecorder(activityLogRepo, log)
	notifier := billing.NewDueNotifier(notificationRepo, log)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	createPlanUC := billing.NewCreateInstallmentPlanUseCase(txRunner, clientRepo, recorder)
	accountsUC := billing.NewAccountsUseCase(accountRepo, notifier, recorder, log)
	consumeUC := stock.NewConsumeUseCase(txRunner, recorder)
	productUC := usecase.NewProductUseCase(productRepo, recorder)
	clientUC := usecase.NewClientUseCase(clientRepo, recorder)
	financialUC := usecase.NewFinancialUseCase(financialRepo, clientRepo, recorder, cfg.Billing.StrictReferences)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	dashboardUC := usecase.NewDashboardUseCase(reportingRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CreatePlan:     createPlanUC,
		AccountsUC:     accountsUC,
		ConsumeUC:      consumeUC,
		ProductUC:      productUC,
		ClientUC:       clientUC,
		FinancialUC:    financialUC,
		NotificationUC: notificationUC,
		DashboardUC:    dashboardUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API escutando")

	// Shutdown graceful: espera SIGINT/SIGTERM e drena conexões.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando aplicacao")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown do servidor")
	}
}
