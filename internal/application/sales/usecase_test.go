package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/application/inventory"
	"github.com/lojinha/estoque-api/internal/application/ledger"
	"github.com/lojinha/estoque-api/internal/application/sales"
	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/infrastructure/csvstore"
	"github.com/lojinha/estoque-api/internal/infrastructure/photos"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	saleUC    *sales.SaleUseCase
	productUC *inventory.ProductUseCase
	accountUC *ledger.AccountUseCase
}

func novaFixture(t *testing.T) fixture {
	t.Helper()
	store, err := csvstore.Open(t.TempDir())
	require.NoError(t, err)
	accountRepo := csvstore.NewAccountRepository(store)
	txRunner := csvstore.NewTxRunner(store)
	return fixture{
		saleUC: sales.NewSaleUseCase(txRunner, csvstore.NewSaleRepository(store)),
		productUC: inventory.NewProductUseCase(
			txRunner,
			csvstore.NewProductRepository(store),
			accountRepo,
			photos.NewStore(t.TempDir()),
			5,
		),
		accountUC: ledger.NewAccountUseCase(accountRepo),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// montaLoja reproduz o cenário clássico: conta Caixa com 1000 e Camisa Polo
// (compra 20, venda 50) com 10 unidades — cadastro debita 200, saldo fica 800.
func montaLoja(t *testing.T, fx fixture) {
	t.Helper()
	_, err := fx.accountUC.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("1000")})
	require.NoError(t, err)
	_, err = fx.productUC.CadastrarProduto(context.Background(), dto.CreateProductRequest{
		Nome:        "Camisa Polo",
		Categoria:   "ROUPAS",
		PrecoCompra: dec("20"),
		PrecoVenda:  dec("50"),
		Quantidade:  10,
		Conta:       "Caixa",
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegistrarVenda — o caminho feliz move as três tabelas juntas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarVenda_BaixaEstoqueCreditaContaEApendaLog(t *testing.T) {
	fx := novaFixture(t)
	montaLoja(t, fx)

	out, err := fx.saleUC.RegistrarVenda(context.Background(), dto.CreateSaleRequest{
		Produto:        "Camisa Polo",
		Quantidade:     3,
		Cliente:        "Ana",
		FormaPagamento: "DINHEIRO",
		Conta:          "Caixa",
	})
	require.NoError(t, err)
	assert.True(t, out.PrecoVenda.Equal(dec("50")), "o log captura o preço do momento")
	assert.True(t, out.Total.Equal(dec("150")))
	assert.Equal(t, 1, out.Parcelas, "pagamento à vista registra parcelas = 1")

	// Estoque: 10 - 3 = 7
	p, err := fx.productUC.BuscarPorNome("Camisa Polo")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Quantidade)

	// Conta: 800 + 150 = 950
	saldo, err := fx.accountUC.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("950")))

	// Log: exatamente uma venda
	hist, err := fx.saleUC.Listar()
	require.NoError(t, err)
	require.Len(t, hist.Items, 1)
	assert.Equal(t, "Ana", hist.Items[0].Cliente)
}

func TestRegistrarVenda_EstoqueInsuficiente_NadaMuda(t *testing.T) {
	fx := novaFixture(t)
	montaLoja(t, fx)

	_, err := fx.saleUC.RegistrarVenda(context.Background(), dto.CreateSaleRequest{
		Produto:        "Camisa Polo",
		Quantidade:     99,
		FormaPagamento: "PIX",
		Conta:          "Caixa",
	})
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	// Nenhuma das três tabelas pode ter mudado.
	p, err := fx.productUC.BuscarPorNome("Camisa Polo")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantidade)

	saldo, err := fx.accountUC.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("800")))

	hist, err := fx.saleUC.Listar()
	require.NoError(t, err)
	assert.Empty(t, hist.Items)
}

func TestRegistrarVenda_ProdutoInexistente_NaoEncontrado(t *testing.T) {
	fx := novaFixture(t)
	montaLoja(t, fx)

	_, err := fx.saleUC.RegistrarVenda(context.Background(), dto.CreateSaleRequest{
		Produto:        "Bermuda",
		Quantidade:     1,
		FormaPagamento: "PIX",
		Conta:          "Caixa",
	})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestRegistrarVenda_ContaInexistente_CriadaComOTotal(t *testing.T) {
	fx := novaFixture(t)
	montaLoja(t, fx)

	// Receber numa conta nova a cria com saldo = total da venda.
	_, err := fx.saleUC.RegistrarVenda(context.Background(), dto.CreateSaleRequest{
		Produto:        "Camisa Polo",
		Quantidade:     2,
		FormaPagamento: "PIX",
		Conta:          "PicPay",
	})
	require.NoError(t, err)

	saldo, err := fx.accountUC.Saldo("PicPay")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("100")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validações e parcelas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarVenda_FormaPagamentoInvalida_Rejeitada(t *testing.T) {
	fx := novaFixture(t)
	montaLoja(t, fx)

	_, err := fx.saleUC.RegistrarVenda(context.Background(), dto.CreateSaleRequest{
		Produto:        "Camisa Polo",
		Quantidade:     1,
		FormaPagamento: "CHEQUE",
		Conta:          "Caixa",
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRegistrarVenda_ParceladoGuardaParcelas(t *testing.T) {
	fx := novaFixture(t)
	montaLoja(t, fx)

	out, err := fx.saleUC.RegistrarVenda(context.Background(), dto.CreateSaleRequest{
		Produto:        "Camisa Polo",
		Quantidade:     1,
		Cliente:        "Bia",
		FormaPagamento: "PARCELADO",
		Parcelas:       6,
		Conta:          "Caixa",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, out.Parcelas)
}

func TestRegistrarVenda_ParcelasIgnoradasForaDoParcelado(t *testing.T) {
	fx := novaFixture(t)
	montaLoja(t, fx)

	out, err := fx.saleUC.RegistrarVenda(context.Background(), dto.CreateSaleRequest{
		Produto:        "Camisa Polo",
		Quantidade:     1,
		FormaPagamento: "CARTAO",
		Parcelas:       12,
		Conta:          "Caixa",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Parcelas, "parcelas só valem com forma PARCELADO")
}

// ──────────────────────────────────────────────────────────────────────────────
// Edição de preço não reescreve o histórico
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarVenda_EdicaoDePrecoNaoAlcancaVendasAntigas(t *testing.T) {
	fx := novaFixture(t)
	montaLoja(t, fx)

	_, err := fx.saleUC.RegistrarVenda(context.Background(), dto.CreateSaleRequest{
		Produto:        "Camisa Polo",
		Quantidade:     1,
		FormaPagamento: "PIX",
		Conta:          "Caixa",
	})
	require.NoError(t, err)

	// Sobe o preço de venda para 80...
	p, err := fx.productUC.BuscarPorNome("Camisa Polo")
	require.NoError(t, err)
	novoPreco := dec("80")
	_, err = fx.productUC.Atualizar(p.ID, dto.UpdateProductRequest{PrecoVenda: &novoPreco})
	require.NoError(t, err)

	// ...a venda antiga continua com 50, a nova sai com 80.
	_, err = fx.saleUC.RegistrarVenda(context.Background(), dto.CreateSaleRequest{
		Produto:        "Camisa Polo",
		Quantidade:     1,
		FormaPagamento: "PIX",
		Conta:          "Caixa",
	})
	require.NoError(t, err)

	hist, err := fx.saleUC.Listar()
	require.NoError(t, err)
	require.Len(t, hist.Items, 2)
	assert.True(t, hist.Items[0].PrecoVenda.Equal(dec("50")))
	assert.True(t, hist.Items[1].PrecoVenda.Equal(dec("80")))
}
