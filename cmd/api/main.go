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

	"github.com/lojinha/estoque-api/internal/application/auth"
	"github.com/lojinha/estoque-api/internal/application/installments"
	"github.com/lojinha/estoque-api/internal/application/inventory"
	"github.com/lojinha/estoque-api/internal/application/ledger"
	"github.com/lojinha/estoque-api/internal/application/reports"
	"github.com/lojinha/estoque-api/internal/application/sales"
	"github.com/lojinha/estoque-api/internal/domain/repository"
	"github.com/lojinha/estoque-api/internal/infrastructure/csvstore"
	infrapdf "github.com/lojinha/estoque-api/internal/infrastructure/pdf"
	"github.com/lojinha/estoque-api/internal/infrastructure/photos"
	"github.com/lojinha/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/lojinha/estoque-api/internal/interfaces/http"
	"github.com/lojinha/estoque-api/pkg/config"
	"github.com/lojinha/estoque-api/pkg/logger"
)

// stores agrupa repositórios e o runner transacional do driver escolhido.
type stores struct {
	accountRepo     repository.AccountRepository
	productRepo     repository.ProductRepository
	saleRepo        repository.SaleRepository
	installmentRepo repository.InstallmentRepository
	userRepo        repository.UserRepository
	txRunner        interface {
		inventory.TxRunner
		sales.TxRunner
	}
	close func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicação")

	ctx := context.Background()

	var st stores
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
		}
		st = stores{
			accountRepo:     postgres.NewAccountRepository(pool),
			productRepo:     postgres.NewProductRepository(pool),
			saleRepo:        postgres.NewSaleRepository(pool),
			installmentRepo: postgres.NewInstallmentRepository(pool),
			userRepo:        postgres.NewUserRepository(pool),
			txRunner:        postgres.NewTxRunner(pool),
			close:           pool.Close,
		}
	default:
		store, err := csvstore.Open(cfg.Store.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir o Record Store CSV")
		}
		st = stores{
			accountRepo:     csvstore.NewAccountRepository(store),
			productRepo:     csvstore.NewProductRepository(store),
			saleRepo:        csvstore.NewSaleRepository(store),
			installmentRepo: csvstore.NewInstallmentRepository(store),
			userRepo:        csvstore.NewUserRepository(store),
			txRunner:        csvstore.NewTxRunner(store),
			close:           func() {},
		}
	}
	defer st.close()

	photoStore := photos.NewStore(cfg.Store.FotosDir)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	accountUC := ledger.NewAccountUseCase(st.accountRepo)
	productUC := inventory.NewProductUseCase(st.txRunner, st.productRepo, st.accountRepo, photoStore, cfg.Estoque.LimiteBaixo)
	saleUC := sales.NewSaleUseCase(st.txRunner, st.saleRepo)
	installmentUC := installments.NewInstallmentUseCase(st.installmentRepo)
	reportUC := reports.NewReportUseCase(st.productRepo, st.saleRepo, pdfGenerator)
	authUC := auth.NewAuthUseCase(st.userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Estoque Loja API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC:     accountUC,
		ProductUC:     productUC,
		SaleUC:        saleUC,
		InstallmentUC: installmentUC,
		ReportUC:      reportUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
