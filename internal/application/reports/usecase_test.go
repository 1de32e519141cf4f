package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/application/reports"
	"github.com/lojinha/estoque-api/internal/domain/entity"
	"github.com/lojinha/estoque-api/internal/infrastructure/csvstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc          *reports.ReportUseCase
	productRepo *csvstore.ProductRepo
	saleRepo    *csvstore.SaleRepo
}

func novaFixture(t *testing.T, pdfGen reports.SummaryPDFGenerator) fixture {
	t.Helper()
	store, err := csvstore.Open(t.TempDir())
	require.NoError(t, err)
	productRepo := csvstore.NewProductRepository(store)
	saleRepo := csvstore.NewSaleRepository(store)
	return fixture{
		uc:          reports.NewReportUseCase(productRepo, saleRepo, pdfGen),
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func produto(id, nome string, compra, venda string, qtd int) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:           id,
		Nome:         nome,
		Categoria:    entity.CategoriaRoupas,
		PrecoCompra:  dec(compra),
		PrecoVenda:   dec(venda),
		Quantidade:   qtd,
		Conta:        "Caixa",
		CriadoEm:     now,
		AtualizadoEm: now,
	}
}

func venda(id, produtoNome string, qtd int, preco string) *entity.Sale {
	return &entity.Sale{
		ID:             id,
		Produto:        produtoNome,
		ProdutoID:      "p-" + id,
		Quantidade:     qtd,
		PrecoVenda:     dec(preco),
		FormaPagamento: entity.PagamentoPix,
		Parcelas:       1,
		Conta:          "Caixa",
		CriadoEm:       time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumo
// ──────────────────────────────────────────────────────────────────────────────

func TestResumo_QuatroAgregados(t *testing.T) {
	fx := novaFixture(t, nil)

	// Estoque atual: Camisa (20/50 × 7) e Capinha (5/15 × 20)
	require.NoError(t, fx.productRepo.Create(produto("p1", "Camisa Polo", "20", "50", 7)))
	require.NoError(t, fx.productRepo.Create(produto("p2", "Capinha", "5", "15", 20)))
	// Log de vendas: 3 camisas a 50 + 2 capinhas a 15
	require.NoError(t, fx.saleRepo.Create(venda("v1", "Camisa Polo", 3, "50")))
	require.NoError(t, fx.saleRepo.Create(venda("v2", "Capinha", 2, "15")))

	out, err := fx.uc.Resumo()
	require.NoError(t, err)

	// total_gasto = 20×7 + 5×20 = 240 (fotografia do estoque atual)
	assert.True(t, out.TotalGastoCompras.Equal(dec("240")), "gasto: %s", out.TotalGastoCompras)
	// total_vendas = 150 + 30 = 180
	assert.True(t, out.TotalVendas.Equal(dec("180")), "vendas: %s", out.TotalVendas)
	// valor_estoque = 50×7 + 15×20 = 650
	assert.True(t, out.ValorEstoque.Equal(dec("650")), "estoque: %s", out.ValorEstoque)
	// margem = 180 − 240 = −60 (aproximação histórica, pode ser negativa)
	assert.True(t, out.MargemBruta.Equal(dec("-60")), "margem: %s", out.MargemBruta)
}

func TestResumo_LojaVazia_TudoZero(t *testing.T) {
	fx := novaFixture(t, nil)

	out, err := fx.uc.Resumo()
	require.NoError(t, err)
	assert.True(t, out.TotalGastoCompras.IsZero())
	assert.True(t, out.TotalVendas.IsZero())
	assert.True(t, out.ValorEstoque.IsZero())
	assert.True(t, out.MargemBruta.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Séries dos gráficos
// ──────────────────────────────────────────────────────────────────────────────

func TestVendidosPorProduto_AgregaEOrdenaPorNome(t *testing.T) {
	fx := novaFixture(t, nil)

	require.NoError(t, fx.saleRepo.Create(venda("v1", "Camisa Polo", 3, "50")))
	require.NoError(t, fx.saleRepo.Create(venda("v2", "Capinha", 2, "15")))
	require.NoError(t, fx.saleRepo.Create(venda("v3", "Camisa Polo", 4, "50")))

	out, err := fx.uc.VendidosPorProduto()
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, dto.ChartPointResponse{Produto: "Camisa Polo", Quantidade: 7}, out.Items[0])
	assert.Equal(t, dto.ChartPointResponse{Produto: "Capinha", Quantidade: 2}, out.Items[1])
}

func TestEstoquePorProduto_FotografiaAtual(t *testing.T) {
	fx := novaFixture(t, nil)

	require.NoError(t, fx.productRepo.Create(produto("p1", "Camisa Polo", "20", "50", 7)))
	require.NoError(t, fx.productRepo.Create(produto("p2", "Capinha", "5", "15", 0)))

	out, err := fx.uc.EstoquePorProduto()
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 7, out.Items[0].Quantidade)
	assert.Equal(t, 0, out.Items[1].Quantidade, "produto zerado continua na série")
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

// pdfGenFake captura os argumentos e devolve bytes fixos.
type pdfGenFake struct {
	resumo   dto.ReportSummaryResponse
	vendidos []dto.ChartPointResponse
	estoque  []dto.ChartPointResponse
}

func (g *pdfGenFake) GenerateSummaryPDF(
	_ context.Context,
	resumo dto.ReportSummaryResponse,
	vendidosPorProduto []dto.ChartPointResponse,
	estoquePorProduto []dto.ChartPointResponse,
) ([]byte, error) {
	g.resumo = resumo
	g.vendidos = vendidosPorProduto
	g.estoque = estoquePorProduto
	return []byte("%PDF-fake"), nil
}

func TestPDF_RepassaResumoESeries(t *testing.T) {
	gen := &pdfGenFake{}
	fx := novaFixture(t, gen)

	require.NoError(t, fx.productRepo.Create(produto("p1", "Camisa Polo", "20", "50", 7)))
	require.NoError(t, fx.saleRepo.Create(venda("v1", "Camisa Polo", 3, "50")))

	out, err := fx.uc.PDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.True(t, gen.resumo.TotalVendas.Equal(dec("150")))
	require.Len(t, gen.vendidos, 1)
	require.Len(t, gen.estoque, 1)
}

func TestPDF_SemGerador_Erro(t *testing.T) {
	fx := novaFixture(t, nil)

	_, err := fx.uc.PDF(context.Background())
	assert.Error(t, err)
}
