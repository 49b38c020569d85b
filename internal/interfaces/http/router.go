package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/escritoriopro/backoffice-api/internal/application/auth"
	"github.com/escritoriopro/backoffice-api/internal/application/billing"
	"github.com/escritoriopro/backoffice-api/internal/application/stock"
	"github.com/escritoriopro/backoffice-api/internal/application/usecase"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	CreatePlan     *billing.CreateInstallmentPlanUseCase
	AccountsUC     *billing.AccountsUseCase
	ConsumeUC      *stock.ConsumeUseCase
	ProductUC      *usecase.ProductUseCase
	ClientUC       *usecase.ClientUseCase
	FinancialUC    *usecase.FinancialUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *usecase.DashboardUseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Contas de cliente (recebíveis)
	accounts := protected.Group("/client-accounts")
	accountHandler := NewAccountHandler(deps.CreatePlan, deps.AccountsUC)
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Patch("/:id/pay", accountHandler.Pay)
	accounts.Delete("/:id", adminOnly, accountHandler.Delete)

	// Produtos e baixa de estoque do PDV
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ConsumeUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Post("/consume", productHandler.Consume)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)

	// Livro-caixa
	financials := protected.Group("/financials")
	financialHandler := NewFinancialHandler(deps.FinancialUC)
	financials.Post("/", financialHandler.Create)
	financials.Get("/", financialHandler.List)

	// Notificações
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/", adminOnly, notificationHandler.Create)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)

	// Painel
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
