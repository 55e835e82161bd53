package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/epicontrol/epi-api/internal/application/audit"
	"github.com/epicontrol/epi-api/internal/application/auth"
	"github.com/epicontrol/epi-api/internal/application/ledger"
	"github.com/epicontrol/epi-api/internal/application/usecase"
	"github.com/epicontrol/epi-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	LedgerUC    *ledger.UseCase
	HistoryUC   *usecase.HistoryUseCase
	DashboardUC *usecase.DashboardUseCase
	Audit       *audit.Recorder
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Remoções de catálogo são exclusivas de admin; auditoria e relatórios
	// ficam com supervisor/admin.
	adminOnly := RequireRole(entity.RoleAdmin)
	supervision := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.HistoryUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Get("/:id/withdrawals", employeeHandler.Withdrawals)

	// Razão de estoque (protegido)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.HistoryUC)
	protected.Post("/withdrawals", ledgerHandler.CreateWithdrawal)
	protected.Get("/withdrawals", ledgerHandler.ListWithdrawals)
	protected.Post("/returns", ledgerHandler.CreateReturn)
	protected.Get("/returns", ledgerHandler.ListReturns)
	protected.Post("/stock/entries", ledgerHandler.CreateStockEntry)
	protected.Get("/stock/movements", ledgerHandler.ListMovements)

	// Trilha de auditoria (supervisor/admin)
	auditGroup := protected.Group("/audit-logs", supervision)
	auditHandler := NewAuditHandler(deps.Audit)
	auditGroup.Get("/", auditHandler.List)
	auditGroup.Get("/actions", auditHandler.Actions)
	auditGroup.Get("/entities", auditHandler.Entities)

	// Painel e relatórios (protegido; relatórios com supervisor/admin)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
	reports := protected.Group("/reports", supervision)
	reports.Get("/withdrawals-by-reason", dashboardHandler.WithdrawalsByReason)
	reports.Get("/employee-balances", dashboardHandler.EmployeeBalances)
}
