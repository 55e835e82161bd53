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

	"github.com/epicontrol/epi-api/internal/application/audit"
	"github.com/epicontrol/epi-api/internal/application/auth"
	"github.com/epicontrol/epi-api/internal/application/ledger"
	"github.com/epicontrol/epi-api/internal/application/usecase"
	"github.com/epicontrol/epi-api/internal/infrastructure/postgres"
	httpRouter "github.com/epicontrol/epi-api/internal/interfaces/http"
	"github.com/epicontrol/epi-api/pkg/config"
	"github.com/epicontrol/epi-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditRecorder := audit.NewRecorder(auditRepo, log)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, auditRecorder)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, auditRecorder)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, auditRecorder)
	ledgerUC := ledger.NewUseCase(txRunner, productRepo, employeeRepo, userRepo, auditRecorder)
	historyUC := usecase.NewHistoryUseCase(withdrawalRepo, returnRepo, movementRepo)
	dashboardUC := usecase.NewDashboardUseCase(reportRepo, withdrawalRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EPI Control API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		EmployeeUC:  employeeUC,
		LedgerUC:    ledgerUC,
		HistoryUC:   historyUC,
		DashboardUC: dashboardUC,
		Audit:       auditRecorder,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
