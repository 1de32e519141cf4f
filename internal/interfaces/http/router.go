package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojinha/estoque-api/internal/application/auth"
	"github.com/lojinha/estoque-api/internal/application/installments"
	"github.com/lojinha/estoque-api/internal/application/inventory"
	"github.com/lojinha/estoque-api/internal/application/ledger"
	"github.com/lojinha/estoque-api/internal/application/reports"
	"github.com/lojinha/estoque-api/internal/application/sales"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AccountUC     *ledger.AccountUseCase
	ProductUC     *inventory.ProductUseCase
	SaleUC        *sales.SaleUseCase
	InstallmentUC *installments.InstallmentUseCase
	ReportUC      *reports.ReportUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
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

	// Contas (protegido)
	contas := protected.Group("/contas")
	accountHandler := NewAccountHandler(deps.AccountUC)
	contas.Post("/", accountHandler.Create)
	contas.Get("/", accountHandler.List)
	contas.Get("/:nome", accountHandler.GetSaldo)
	contas.Post("/:nome/delta", accountHandler.ApplyDelta)

	// Produtos (protegido)
	produtos := protected.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	produtos.Post("/", productHandler.Create)
	produtos.Get("/", productHandler.List)
	// Rotas fixas antes de /:id para não colidirem com o parâmetro.
	produtos.Get("/catalogo", productHandler.Catalog)
	produtos.Get("/estoque-baixo", productHandler.LowStock)
	produtos.Get("/:id", productHandler.GetByID)
	produtos.Put("/:id", productHandler.Update)
	produtos.Patch("/:id/quantidade", productHandler.AdjustQuantity)
	produtos.Post("/:id/foto", productHandler.UploadPhoto)
	produtos.Delete("/:id", productHandler.Delete)

	// Vendas (protegido)
	vendas := protected.Group("/vendas")
	saleHandler := NewSaleHandler(deps.SaleUC)
	vendas.Post("/", saleHandler.Create)
	vendas.Get("/", saleHandler.List)

	// Crediário (protegido)
	crediario := protected.Group("/crediario")
	installmentHandler := NewInstallmentHandler(deps.InstallmentUC)
	crediario.Post("/", installmentHandler.Create)
	crediario.Get("/", installmentHandler.List)
	crediario.Post("/:id/pagar", installmentHandler.MarkPaid)

	// Relatórios (protegido)
	relatorios := protected.Group("/relatorios")
	reportHandler := NewReportHandler(deps.ReportUC)
	relatorios.Get("/resumo", reportHandler.Summary)
	relatorios.Get("/vendidos-por-produto", reportHandler.SoldByProduct)
	relatorios.Get("/estoque-por-produto", reportHandler.StockByProduct)
	relatorios.Get("/pdf", reportHandler.PDF)
}
